package agent

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/etnz/networth"
)

const model = "gemini-2.5-flash"

// Advisor asks a generative model for financial guidance over one snapshot.
type Advisor struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	// Timeout bounds a single model call. Zero means no bound beyond the
	// caller's context.
	Timeout time.Duration
}

// NewAdvisor returns the default advisor.
func NewAdvisor() *Advisor {
	return &Advisor{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal finance advisor. The user shares a snapshot of
			their assets, liabilities, incomes and expenses, with precomputed
			totals and health ratios.

			Ground every statement in the figures you were given. Be concrete
			and concise, answer in markdown, and never invent numbers that are
			not in the snapshot.
		`}}},
		},
		Timeout: 30 * time.Second,
	}
}

// Prompt assembles the full prompt: snapshot context then the question.
func (a *Advisor) Prompt(label string, data networth.Data, question string) string {
	var b strings.Builder
	b.WriteString(Context(label, data))
	b.WriteString("Question: ")
	b.WriteString(strings.TrimSpace(question))
	b.WriteString("\n")
	return b.String()
}

// Fallback is the offline answer: the snapshot context followed by the
// local deterministic analysis.
func (a *Advisor) Fallback(label string, data networth.Data) string {
	return Context(label, data) + "Analysis:\n" + Analysis(data) + "\n"
}

// Advise sends the snapshot and question to the model. A nil client, a
// model error, an empty answer or an expired timeout all degrade to the
// offline fallback; Advise itself never fails.
func (a *Advisor) Advise(ctx context.Context, client *genai.Client, label string, data networth.Data, question string) string {
	if client == nil {
		return a.Fallback(label, data)
	}
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	prompt := a.Prompt(label, data, question)
	resp, err := client.Models.GenerateContent(ctx, a.ModelName, genai.Text(prompt), a.Config)
	if err != nil {
		log.Printf("advisor %q: model call failed: %v", a.Name, err)
		return a.Fallback(label, data)
	}
	answer := resp.Text()
	if strings.TrimSpace(answer) == "" {
		log.Printf("advisor %q: empty answer from %s", a.Name, a.ModelName)
		return a.Fallback(label, data)
	}
	return answer
}

// NewClient creates the genai client used by Advise, relying on the
// GEMINI_API_KEY environment variable for credentials.
func NewClient(ctx context.Context) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}
	return client, nil
}
