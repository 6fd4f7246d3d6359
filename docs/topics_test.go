package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics parses readme.md and returns the topic names of its list,
// the part of each bullet before the colon.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	content, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var topics []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		item, ok := n.(*ast.ListItem)
		if !ok {
			return ast.WalkContinue, nil
		}

		var line strings.Builder
		ast.Walk(item, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering {
				if txt, ok := c.(*ast.Text); ok {
					line.Write(txt.Segment.Value(content))
				}
			}
			return ast.WalkContinue, nil
		})

		name, _, found := strings.Cut(line.String(), ":")
		if found {
			topics = append(topics, strings.TrimSpace(name))
		}
		return ast.WalkSkipChildren, nil
	})
	return topics
}

// TestTopics keeps the readme table of contents in sync with the topic
// files: every listed topic must load, and every topic file must be listed.
func TestTopics(t *testing.T) {
	topicsInReadme := readmeTopics(t)
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics found in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		found := false
		for _, topic := range topicsInReadme {
			if topic == base {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range topics {
		if topic == "readme" {
			t.Error("readme should not be a topic")
		}
	}
	if !sortedStrings(topics) {
		t.Errorf("topics not sorted: %v", topics)
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestGetTopicStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	topics, _ := GetAllTopics()
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("star expansion misses topic %q", topic)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("unknown topic should fail")
	}
}
