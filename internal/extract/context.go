package extract

// Sentinels for scope that was never established in the source document.
const (
	DefaultModule    = "Unknown"
	UnknownEpicTitle = "Unknown"
	OrphanStoryID    = "(orphan)"
)

// Epic is an identified, titled group of stories.
type Epic struct {
	ID    string
	Title string
}

// Story is one recognized user story. Module and Epic are snapshots of the
// scope active when the story line was seen; later scope changes never
// alter an already-created story.
type Story struct {
	ID     string
	Title  string
	Module string
	Epic   Epic
}

// Tracker is the mutable (module, epic, story) cursor threaded through a
// block walk. The zero value is ready to use.
type Tracker struct {
	module string
	epic   *Epic
	story  *Story
}

// Apply mutates the scope slot named by the match and returns the created
// story on a story match, nil otherwise. Repeated module lines overwrite
// (last seen wins). A new epic does not clear the current story: tables
// between an epic line and its first story line still attach to the last
// story seen.
func (t *Tracker) Apply(m LineMatch) *Story {
	switch m.Kind {
	case LineModule:
		t.module = m.Name
	case LineEpic:
		t.epic = &Epic{ID: m.ID, Title: m.Title}
	case LineStory:
		s := &Story{ID: m.ID, Title: m.Title, Module: t.Module(), Epic: t.Epic()}
		t.story = s
		return s
	}
	return nil
}

// CurrentStory returns the story in scope, or nil before any story line.
func (t *Tracker) CurrentStory() *Story {
	return t.story
}

// Module returns the module in scope, falling back to DefaultModule.
func (t *Tracker) Module() string {
	if t.module == "" {
		return DefaultModule
	}
	return t.module
}

// Epic returns the epic in scope, falling back to the unknown sentinel.
func (t *Tracker) Epic() Epic {
	if t.epic == nil {
		return Epic{Title: UnknownEpicTitle}
	}
	return *t.epic
}
