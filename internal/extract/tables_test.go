package extract

import "testing"

func TestClassifyTable_HeaderInFirstRow(t *testing.T) {
	rows := [][]string{
		{"AC #", "Scenario"},
		{"1", "Works"},
	}
	hdr, ok := ClassifyTable(rows)
	if !ok {
		t.Fatal("expected AC table")
	}
	if hdr != 0 {
		t.Errorf("expected header row 0, got %d", hdr)
	}
}

func TestClassifyTable_HeaderInSecondRow(t *testing.T) {
	rows := [][]string{
		{"Sprint 4", ""},
		{"Sr No", "Scenario"},
		{"1", "Works"},
	}
	hdr, ok := ClassifyTable(rows)
	if !ok {
		t.Fatal("expected AC table")
	}
	if hdr != 1 {
		t.Errorf("expected header row 1, got %d", hdr)
	}
}

func TestClassifyTable_KeywordSubstring(t *testing.T) {
	// "Acceptance Criteria Description" carries the keyword as a substring.
	rows := [][]string{
		{"No.", "Acceptance Criteria Description"},
		{"1", "Works"},
	}
	if _, ok := ClassifyTable(rows); !ok {
		t.Fatal("expected AC table for substring keyword match")
	}
}

func TestClassifyTable_RejectsNoKeywords(t *testing.T) {
	rows := [][]string{
		{"Name", "Value"},
		{"a", "b"},
	}
	if _, ok := ClassifyTable(rows); ok {
		t.Fatal("expected non-AC table")
	}
}

func TestClassifyTable_RejectsSingleRow(t *testing.T) {
	rows := [][]string{{"Scenario"}}
	if _, ok := ClassifyTable(rows); ok {
		t.Fatal("expected header-only table to classify false")
	}
}

func TestClassifyTable_RejectsAllEmpty(t *testing.T) {
	rows := [][]string{
		{"", ""},
		{"", ""},
	}
	if _, ok := ClassifyTable(rows); ok {
		t.Fatal("expected all-empty table to classify false")
	}
}

func TestClassifyTable_KeywordBeyondSecondRowIgnored(t *testing.T) {
	rows := [][]string{
		{"Col A", "Col B"},
		{"x", "y"},
		{"Scenario", "z"},
	}
	if _, ok := ClassifyTable(rows); ok {
		t.Fatal("expected keyword past row 1 to be ignored")
	}
}

func TestNormalizeHeaders_ACNumberAliasVariants(t *testing.T) {
	// Case and punctuation variants must all resolve to the same role.
	for _, h := range []string{"Sr. No", "SR NO", "sr no", "S.No", "Sr.No.", "#", "ID", "AC #", "AC No.", "No"} {
		hm := NormalizeHeaders([]string{h, "Scenario"})
		if hm.ACNumber != 0 {
			t.Errorf("%q: expected AC number column 0, got %d", h, hm.ACNumber)
		}
		if hm.Scenario != 1 {
			t.Errorf("%q: expected scenario column 1, got %d", h, hm.Scenario)
		}
	}
}

func TestNormalizeHeaders_ScenarioAliasVariants(t *testing.T) {
	for _, h := range []string{"Scenario", "SCENARIO", "Expected Result", "Acceptance Criteria", "Expected", "Result"} {
		hm := NormalizeHeaders([]string{"#", h, "Notes"})
		if hm.Scenario != 1 {
			t.Errorf("%q: expected scenario column 1, got %d", h, hm.Scenario)
		}
	}
}

func TestNormalizeHeaders_LeftmostWins(t *testing.T) {
	hm := NormalizeHeaders([]string{"#", "ID", "Scenario", "Expected Result"})
	if hm.ACNumber != 0 {
		t.Errorf("expected leftmost AC number column 0, got %d", hm.ACNumber)
	}
	if hm.Scenario != 2 {
		t.Errorf("expected leftmost scenario column 2, got %d", hm.Scenario)
	}
}

func TestNormalizeHeaders_ScenarioFallsBackToLastColumn(t *testing.T) {
	hm := NormalizeHeaders([]string{"Step", "Owner", "Details"})
	if hm.ACNumber != -1 {
		t.Errorf("expected unresolved AC number, got %d", hm.ACNumber)
	}
	if hm.Scenario != 2 {
		t.Errorf("expected last-column scenario fallback 2, got %d", hm.Scenario)
	}
}

func TestNormalizeHeaders_SingleCriteriaColumn(t *testing.T) {
	// A lone "Acceptance Criteria" column is the scenario source, not an id.
	hm := NormalizeHeaders([]string{"Acceptance Criteria"})
	if hm.ACNumber != -1 {
		t.Errorf("expected unresolved AC number, got %d", hm.ACNumber)
	}
	if hm.Scenario != 0 {
		t.Errorf("expected scenario column 0, got %d", hm.Scenario)
	}
}

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sr. No", "sr no"},
		{"SR NO", "sr no"},
		{"S.No", "s no"},
		{"AC #", "ac #"},
		{"#", "#"},
		{"  Expected   Result  ", "expected result"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeCell(tt.in); got != tt.want {
			t.Errorf("normalizeCell(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
