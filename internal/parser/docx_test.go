package parser

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/fumiama/go-docx"
)

// buildDocx authors an in-memory document with the go-docx writer so the
// parser round-trips real docx bytes without fixture files.
func buildDocx(t *testing.T, paragraphs []string, table [][]string) *bytes.Reader {
	t.Helper()
	doc := docx.New().WithDefaultTheme()
	for _, text := range paragraphs {
		doc.AddParagraph().AddText(text)
	}
	if len(table) > 0 {
		tbl := doc.AddTable(len(table), len(table[0]), 8000, nil)
		for r, row := range table {
			for c, cell := range row {
				tbl.TableRows[r].TableCells[c].AddParagraph().AddText(cell)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestDOCXParser_ParagraphsAndTable(t *testing.T) {
	wantRows := [][]string{
		{"AC #", "Scenario"},
		{"1", "Valid UPI handle"},
		{"2", "Invalid UPI handle"},
	}
	r := buildDocx(t, []string{"Module: Payments", "Story 1.1: Add money using UPI"}, wantRows)

	p := &DOCXParser{}
	blocks, err := p.Parse(r, "plan.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if got := textBlockAt(t, blocks, 0).Text; got != "Module: Payments" {
		t.Errorf("block[0]: expected %q, got %q", "Module: Payments", got)
	}
	if got := textBlockAt(t, blocks, 1).Text; got != "Story 1.1: Add money using UPI" {
		t.Errorf("block[1]: expected %q, got %q", "Story 1.1: Add money using UPI", got)
	}
	tb := tableBlockAt(t, blocks, 2)
	if !reflect.DeepEqual(tb.Rows, wantRows) {
		t.Errorf("expected rows %v, got %v", wantRows, tb.Rows)
	}
}

func TestDOCXParser_TableOnly(t *testing.T) {
	r := buildDocx(t, nil, [][]string{
		{"Scenario"},
		{"Works"},
	})

	p := &DOCXParser{}
	blocks, err := p.Parse(r, "table.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	tb := tableBlockAt(t, blocks, 0)
	if len(tb.Rows) != 2 || tb.Rows[1][0] != "Works" {
		t.Errorf("unexpected rows: %v", tb.Rows)
	}
}
