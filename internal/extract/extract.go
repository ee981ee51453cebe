package extract

import (
	"strconv"
	"strings"

	"github.com/reqsmith/storyscan/internal/docstream"
)

// StoryRecord is one row of the stories output table.
type StoryRecord struct {
	Module     string `json:"module"`
	EpicID     string `json:"epic_id"`
	EpicTitle  string `json:"epic_title"`
	StoryID    string `json:"story_id"`
	StoryTitle string `json:"story_title"`
	ACCount    int    `json:"acceptance_criteria_count"`
}

// ACRecord is one row of the acceptance-criteria output table. Story fields
// are denormalized from the owning story's snapshot; orphan rows carry the
// scope current at emission and the orphan story id.
type ACRecord struct {
	Module     string `json:"module"`
	EpicID     string `json:"epic_id"`
	EpicTitle  string `json:"epic_title"`
	StoryID    string `json:"story_id"`
	StoryTitle string `json:"story_title"`
	Number     string `json:"ac_number"`
	Scenario   string `json:"scenario"`

	storyIdx int // index into Result.Stories, -1 for orphan rows
}

// Result holds the two relational output tables of one extraction run.
type Result struct {
	Stories  []StoryRecord `json:"stories"`
	Criteria []ACRecord    `json:"acceptance_criteria"`
}

// Output column names, in fixed order.
var (
	StoriesColumns  = []string{"Module", "Epic ID", "Epic Title", "Story ID", "Story Title", "Acceptance Criteria Count"}
	CriteriaColumns = []string{"Module", "Epic ID", "Epic Title", "Story ID", "Story Title", "AC #", "Scenario"}
)

// Document walks a block sequence once, in order, and assembles the two
// output tables. It never fails: malformed lines are ignored, orphan table
// rows are emitted under a sentinel story id, irregular rows pad with empty
// cells, and empty input yields empty tables. Runs are independent, so
// concurrent calls over different block sequences need no synchronization.
func Document(blocks []docstream.Block) Result {
	var tracker Tracker
	var stories []*Story
	criteria := []ACRecord{}

	for _, block := range blocks {
		switch b := block.(type) {
		case docstream.TextBlock:
			for _, line := range strings.Split(b.Text, "\n") {
				if s := tracker.Apply(ClassifyLine(line)); s != nil {
					stories = append(stories, s)
				}
			}

		case docstream.TableBlock:
			headerRow, ok := ClassifyTable(b.Rows)
			if !ok {
				continue
			}
			hm := NormalizeHeaders(b.Rows[headerRow])
			ordinal := 0
			for _, row := range b.Rows[headerRow+1:] {
				if rowEmpty(row) {
					continue
				}
				ordinal++
				rec := ACRecord{storyIdx: -1}
				if s := tracker.CurrentStory(); s != nil {
					rec.storyIdx = len(stories) - 1
					rec.Module = s.Module
					rec.EpicID = s.Epic.ID
					rec.EpicTitle = s.Epic.Title
					rec.StoryID = s.ID
					rec.StoryTitle = s.Title
				} else {
					epic := tracker.Epic()
					rec.Module = tracker.Module()
					rec.EpicID = epic.ID
					rec.EpicTitle = epic.Title
					rec.StoryID = OrphanStoryID
				}
				rec.Number = cellAt(row, hm.ACNumber)
				if rec.Number == "" {
					rec.Number = strconv.Itoa(ordinal)
				}
				rec.Scenario = cellAt(row, hm.Scenario)
				criteria = append(criteria, rec)
			}
		}
	}

	// Counts come from grouping the emitted criteria by owning story, never
	// from a running counter, so the count invariant holds by construction.
	counts := make([]int, len(stories))
	for _, rec := range criteria {
		if rec.storyIdx >= 0 {
			counts[rec.storyIdx]++
		}
	}

	result := Result{
		Stories:  make([]StoryRecord, len(stories)),
		Criteria: criteria,
	}
	for i, s := range stories {
		result.Stories[i] = StoryRecord{
			Module:     s.Module,
			EpicID:     s.Epic.ID,
			EpicTitle:  s.Epic.Title,
			StoryID:    s.ID,
			StoryTitle: s.Title,
			ACCount:    counts[i],
		}
	}
	return result
}

// cellAt reads a cell by index, treating missing trailing cells and negative
// indexes as empty.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// StoriesRows renders the stories table as string rows in StoriesColumns
// order, stories in discovery order.
func (r Result) StoriesRows() [][]string {
	rows := make([][]string, 0, len(r.Stories))
	for _, s := range r.Stories {
		rows = append(rows, []string{s.Module, s.EpicID, s.EpicTitle, s.StoryID, s.StoryTitle, strconv.Itoa(s.ACCount)})
	}
	return rows
}

// CriteriaRows renders the acceptance-criteria table as string rows in
// CriteriaColumns order, criteria in emission order.
func (r Result) CriteriaRows() [][]string {
	rows := make([][]string, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		rows = append(rows, []string{c.Module, c.EpicID, c.EpicTitle, c.StoryID, c.StoryTitle, c.Number, c.Scenario})
	}
	return rows
}

// Summary aggregates one run's outputs for quick reporting.
type Summary struct {
	Epics               int     `json:"epics"`
	Stories             int     `json:"stories"`
	Criteria            int     `json:"acceptance_criteria"`
	Orphans             int     `json:"orphan_criteria"`
	AvgCriteriaPerStory float64 `json:"avg_criteria_per_story"`
}

// Summarize computes the run summary. Epics counts distinct epic id/title
// pairs among story records; Orphans counts criteria rows emitted while no
// story was in scope, so dropped context is visible rather than silent.
func (r Result) Summarize() Summary {
	sum := Summary{Stories: len(r.Stories), Criteria: len(r.Criteria)}
	epics := make(map[Epic]bool)
	for _, s := range r.Stories {
		epics[Epic{ID: s.EpicID, Title: s.EpicTitle}] = true
	}
	sum.Epics = len(epics)
	for _, c := range r.Criteria {
		if c.StoryID == OrphanStoryID {
			sum.Orphans++
		}
	}
	if sum.Stories > 0 {
		sum.AvgCriteriaPerStory = float64(sum.Criteria) / float64(sum.Stories)
	}
	return sum
}
