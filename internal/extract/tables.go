package extract

import (
	"regexp"
	"strings"
)

// acTableKeywords mark a candidate header row of an acceptance-criteria
// table. Matching is substring on normalized cell text.
var acTableKeywords = []string{
	"acceptance", "criteria", "scenario", "given", "when", "then", "expected", "result",
}

// Role aliases keyed by normalized header text. The sets are disjoint, so a
// cell resolves to at most one role.
var (
	acNumberAliases = map[string]bool{
		"sr no": true, "s no": true, "#": true, "id": true, "ac #": true,
		"ac no": true, "ac number": true, "no": true, "sno": true, "srno": true,
	}
	scenarioAliases = map[string]bool{
		"scenario": true, "expected result": true, "acceptance criteria": true,
		"expected": true, "result": true,
	}
)

// ClassifyTable decides whether rows form an acceptance-criteria table and
// returns the header row index (0 or 1). Only header content is consulted,
// never table position or styling. A table with fewer than two rows, or with
// every cell empty, is never an AC table.
func ClassifyTable(rows [][]string) (int, bool) {
	if len(rows) < 2 || allEmpty(rows) {
		return 0, false
	}
	for i := 0; i < 2; i++ {
		for _, cell := range rows[i] {
			norm := normalizeCell(cell)
			if norm == "" {
				continue
			}
			for _, kw := range acTableKeywords {
				if strings.Contains(norm, kw) {
					return i, true
				}
			}
		}
	}
	return 0, false
}

// HeaderMap holds the resolved column index of each canonical role.
// ACNumber is -1 when no column resolved; Scenario falls back to the last
// column, since free-text result columns often carry no recognizable header.
type HeaderMap struct {
	ACNumber int
	Scenario int
}

// NormalizeHeaders maps raw header cells to canonical column roles. Cells
// are scanned left to right; the first cell matching an alias set claims
// that role, a cell claims at most one role, and later matches for a
// claimed role are ignored.
func NormalizeHeaders(header []string) HeaderMap {
	hm := HeaderMap{ACNumber: -1, Scenario: -1}
	for i, cell := range header {
		norm := normalizeCell(cell)
		switch {
		case hm.ACNumber < 0 && acNumberAliases[norm]:
			hm.ACNumber = i
		case hm.Scenario < 0 && scenarioAliases[norm]:
			hm.Scenario = i
		}
	}
	if hm.Scenario < 0 && len(header) > 0 {
		hm.Scenario = len(header) - 1
	}
	return hm
}

var cellPunct = regexp.MustCompile(`[^\w#]+`)

// normalizeCell lowercases a cell and turns punctuation runs into single
// spaces, keeping '#'. "Sr. No", "SR NO" and "sr no" all normalize to
// "sr no".
func normalizeCell(s string) string {
	s = cellPunct.ReplaceAllString(strings.ToLower(s), " ")
	return strings.TrimSpace(s)
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func allEmpty(rows [][]string) bool {
	for _, row := range rows {
		if !rowEmpty(row) {
			return false
		}
	}
	return true
}
