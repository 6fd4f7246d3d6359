package networth

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func testDocument() Document {
	return Document{Snapshots: []Snapshot{{
		ID:        "20260301-abcd1234",
		Label:     "March",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Data: Data{
			Assets:      []Asset{asset("Cash", 1000.50, Cash, High)},
			Liabilities: []Liability{liability("Loan", 200, ShortTerm)},
			Incomes:     []Income{income("Salary", 3000, Employment)},
			Expenses:    []Expense{expense("Rent", 900, Essential)},
		},
	}}}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	doc := testDocument()

	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}

	decoded, err := DecodeDocument(&buf)
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}

	var buf2 bytes.Buffer
	if err := EncodeDocument(&buf2, decoded); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	// comparing re-encodings sidesteps time.Time internals
	if got, want := buf2.String(), func() string {
		var b bytes.Buffer
		EncodeDocument(&b, doc)
		return b.String()
	}(); got != want {
		t.Errorf("round trip changed the document:\n%s\nvs\n%s", got, want)
	}
}

func TestEncode_OmitsEmptyCategoricalFields(t *testing.T) {
	doc := Document{Snapshots: []Snapshot{{
		ID:    "x",
		Label: "X",
		Data:  Data{Assets: []Asset{asset("Misc", 5, "", "")}},
	}}}
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	if strings.Contains(buf.String(), `"category"`) {
		t.Errorf("empty category serialized:\n%s", buf.String())
	}
	// empty lists serialize as [], not null
	if strings.Contains(buf.String(), "null") {
		t.Errorf("empty list serialized as null:\n%s", buf.String())
	}
}

func TestDecode_CoercesAmounts(t *testing.T) {
	payload := `{"snapshots":[{"id":"a","label":"A","createdAt":"2026-03-01T00:00:00Z","data":{
		"assets":[{"name":"Neg","amount":-50},{"name":"Bad","amount":"oops"},{"name":"Ok","amount":12.5}],
		"liabilities":[],"incomes":[],"expenses":[]}}]}`

	doc, err := DecodeDocument(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	got := doc.Snapshots[0].Data.Assets
	if got[0].Amount != 0 || got[1].Amount != 0 || got[2].Amount != 12.5 {
		t.Errorf("amounts = %v, %v, %v, want 0, 0, 12.5", got[0].Amount, got[1].Amount, got[2].Amount)
	}
}

func TestImport_StructuralRules(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		rule    string
	}{
		{"not json", `{broken`, "not a valid JSON document"},
		{"missing snapshots", `{}`, "missing snapshots array"},
		{"missing id", `{"snapshots":[{"label":"A","data":{}}]}`, "snapshot 0: missing id"},
		{"missing label", `{"snapshots":[{"id":"a","data":{}}]}`, "snapshot 0: missing label"},
		{"missing data", `{"snapshots":[{"id":"a","label":"A"}]}`, "snapshot 0: missing data"},
		{"duplicate id", `{"snapshots":[{"id":"a","label":"A","data":{}},{"id":"a","label":"B","data":{}}]}`, `snapshot 1: duplicate id "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportDocument(strings.NewReader(tt.payload))
			var merr *MalformedDocumentError
			if !errors.As(err, &merr) {
				t.Fatalf("ImportDocument() error = %v, want MalformedDocumentError", err)
			}
			if !strings.Contains(merr.Rule, tt.rule) {
				t.Errorf("Rule = %q, want it to name %q", merr.Rule, tt.rule)
			}
		})
	}
}

func TestImport_MissingCategoryListIsCorrected(t *testing.T) {
	// a missing category list is tolerated and becomes an empty list
	payload := `{"snapshots":[{"id":"a","label":"A","data":{"assets":[{"name":"Cash","amount":10}]}}]}`
	doc, err := ImportDocument(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ImportDocument() error = %v", err)
	}
	d := doc.Snapshots[0].Data
	if len(d.Assets) != 1 {
		t.Errorf("Assets = %v, want 1 item", d.Assets)
	}
	if d.Liabilities == nil && len(d.Liabilities) != 0 {
		t.Errorf("Liabilities = %v, want empty", d.Liabilities)
	}
	// the corrected document exports with all four lists present
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	for _, list := range []string{`"assets"`, `"liabilities"`, `"incomes"`, `"expenses"`} {
		if !strings.Contains(buf.String(), list) {
			t.Errorf("exported document misses %s:\n%s", list, buf.String())
		}
	}
}

func TestImport_CoercionIsIdempotent(t *testing.T) {
	payload := `{"snapshots":[{"id":"a","label":"A","data":{"assets":[{"name":"Neg","amount":-3}],
		"liabilities":[],"incomes":[],"expenses":[]}}]}`

	once, err := ImportDocument(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ImportDocument() error = %v", err)
	}
	var buf bytes.Buffer
	EncodeDocument(&buf, once)
	twice, err := ImportDocument(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("re-import error = %v", err)
	}
	if got, want := twice.Snapshots[0].Data.Assets[0].Amount, once.Snapshots[0].Data.Assets[0].Amount; got != want {
		t.Errorf("coercing twice = %v, coercing once = %v", got, want)
	}
}
