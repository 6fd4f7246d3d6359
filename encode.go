package networth

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// This file handles the document persistence and import/export format: one
// human-readable JSON object holding every snapshot. The same format backs
// the store's backend payload and the import/export files; import adds
// structural validation on top of it.

// jsonAmount decodes any JSON value into a usable amount: anything that is
// not a finite non-negative number becomes 0. The coercion is idempotent,
// so re-importing an exported document is lossless.
type jsonAmount float64

func (a *jsonAmount) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*a = 0
		return nil
	}
	*a = jsonAmount(coerceAmount(v))
	return nil
}

type jitem struct {
	Name      string     `json:"name"`
	Amount    jsonAmount `json:"amount"`
	Category  string     `json:"category,omitempty"`
	Term      string     `json:"term,omitempty"`
	Liquidity string     `json:"liquidity,omitempty"`
}

type jdata struct {
	Assets      []jitem `json:"assets"`
	Liabilities []jitem `json:"liabilities"`
	Incomes     []jitem `json:"incomes"`
	Expenses    []jitem `json:"expenses"`
}

// jsnapshot uses a pointer for data so that a missing "data" object is
// distinguishable from an empty one during import validation.
type jsnapshot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	CreatedAt string `json:"createdAt"`
	Data      *jdata `json:"data"`
}

type jdocument struct {
	Snapshots *[]jsnapshot `json:"snapshots"`
}

func toData(jd *jdata) Data {
	var d Data
	if jd == nil {
		return d
	}
	for _, ji := range jd.Assets {
		d.Assets = append(d.Assets, Asset{
			Name:      ji.Name,
			Amount:    float64(ji.Amount),
			Category:  AssetCategory(ji.Category),
			Liquidity: Liquidity(ji.Liquidity),
		})
	}
	for _, ji := range jd.Liabilities {
		d.Liabilities = append(d.Liabilities, Liability{
			Name:   ji.Name,
			Amount: float64(ji.Amount),
			Term:   Term(ji.Term),
		})
	}
	for _, ji := range jd.Incomes {
		d.Incomes = append(d.Incomes, Income{
			Name:     ji.Name,
			Amount:   float64(ji.Amount),
			Category: IncomeCategory(ji.Category),
		})
	}
	for _, ji := range jd.Expenses {
		d.Expenses = append(d.Expenses, Expense{
			Name:     ji.Name,
			Amount:   float64(ji.Amount),
			Category: ExpenseCategory(ji.Category),
		})
	}
	return d
}

func toDocument(jd jdocument) Document {
	var doc Document
	if jd.Snapshots == nil {
		return doc
	}
	for _, js := range *jd.Snapshots {
		// A timestamp that does not parse is kept as the zero time rather
		// than rejecting the snapshot.
		createdAt, _ := time.Parse(time.RFC3339, js.CreatedAt)
		doc.Snapshots = append(doc.Snapshots, Snapshot{
			ID:        js.ID,
			Label:     js.Label,
			CreatedAt: createdAt,
			Data:      toData(js.Data),
		})
	}
	return doc
}

func fromDocument(doc Document) jdocument {
	jitems := func(items []Item) []jitem {
		out := make([]jitem, 0, len(items))
		for _, it := range items {
			ji := jitem{Name: it.Label(), Amount: jsonAmount(it.Value())}
			switch v := it.(type) {
			case Asset:
				ji.Category = string(v.Category)
				ji.Liquidity = string(v.Liquidity)
			case Liability:
				ji.Term = string(v.Term)
			case Income:
				ji.Category = string(v.Category)
			case Expense:
				ji.Category = string(v.Category)
			}
			out = append(out, ji)
		}
		return out
	}

	snapshots := make([]jsnapshot, 0, len(doc.Snapshots))
	for _, s := range doc.Snapshots {
		jd := &jdata{
			Assets:      jitems(asItems(s.Data.Assets)),
			Liabilities: jitems(asItems(s.Data.Liabilities)),
			Incomes:     jitems(asItems(s.Data.Incomes)),
			Expenses:    jitems(asItems(s.Data.Expenses)),
		}
		snapshots = append(snapshots, jsnapshot{
			ID:        s.ID,
			Label:     s.Label,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
			Data:      jd,
		})
	}
	return jdocument{Snapshots: &snapshots}
}

// asItems widens a typed item slice into []Item.
func asItems[T Item](items []T) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// EncodeDocument writes the document as indented JSON.
func EncodeDocument(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(fromDocument(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write document: %w", err)
	}
	return nil
}

// DecodeDocument reads a document leniently: amounts are coerced, missing
// lists or fields become their zero values. This is the load path; a
// payload that is not valid JSON is the only error.
func DecodeDocument(r io.Reader) (Document, error) {
	var jd jdocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jd); err != nil {
		return Document{}, fmt.Errorf("cannot parse document: %w", err)
	}
	return toDocument(jd), nil
}

// ImportDocument reads and structurally validates an import payload. Any
// violation rejects the whole payload with a MalformedDocumentError naming
// the failed rule; a missing category list is the one tolerated gap, it is
// corrected to an empty list.
func ImportDocument(r io.Reader) (Document, error) {
	var jd jdocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jd); err != nil {
		return Document{}, &MalformedDocumentError{Rule: fmt.Sprintf("not a valid JSON document: %v", err)}
	}
	if jd.Snapshots == nil {
		return Document{}, &MalformedDocumentError{Rule: "missing snapshots array"}
	}
	seen := make(map[string]bool)
	for i, js := range *jd.Snapshots {
		if strings.TrimSpace(js.ID) == "" {
			return Document{}, &MalformedDocumentError{Rule: fmt.Sprintf("snapshot %d: missing id", i)}
		}
		if strings.TrimSpace(js.Label) == "" {
			return Document{}, &MalformedDocumentError{Rule: fmt.Sprintf("snapshot %d: missing label", i)}
		}
		if js.Data == nil {
			return Document{}, &MalformedDocumentError{Rule: fmt.Sprintf("snapshot %d: missing data", i)}
		}
		if seen[js.ID] {
			return Document{}, &MalformedDocumentError{Rule: fmt.Sprintf("snapshot %d: duplicate id %q", i, js.ID)}
		}
		seen[js.ID] = true
	}
	return toDocument(jd), nil
}
