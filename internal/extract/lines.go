package extract

import (
	"regexp"
	"strings"
)

// LineKind tags the structural meaning of a classified line.
type LineKind int

const (
	LineNone LineKind = iota
	LineModule
	LineEpic
	LineStory
)

// LineMatch is the result of classifying one line of text. The zero value
// (Kind LineNone) means the line carries no structural signal.
type LineMatch struct {
	Kind  LineKind
	ID    string // epic or story identifier, e.g. "2.1"
	Title string // epic or story title
	Name  string // module name
}

var (
	storyRe  = regexp.MustCompile(`(?i)^(?:user\s+)?story\s+(\d+(?:\.\d+)*)\s*[:\-–—]\s*(.+)$`)
	epicRe   = regexp.MustCompile(`(?i)^epic\s+(\d+(?:\.\d+)*)\s*[:\-–—]\s*(.+)$`)
	moduleRe = regexp.MustCompile(`(?i)module\s*[:\-–—]\s*(\S.*)`)
)

// ClassifyLine matches one line against the story, epic and module patterns,
// in that order. Story before epic is the documented tie-break for lines that
// could match both; module goes last because its pattern matches anywhere in
// the line rather than anchoring at the start.
func ClassifyLine(line string) LineMatch {
	s := stripDecoration(line)
	if s == "" {
		return LineMatch{}
	}
	if m := storyRe.FindStringSubmatch(s); m != nil {
		return LineMatch{Kind: LineStory, ID: m[1], Title: trimTitle(m[2])}
	}
	if m := epicRe.FindStringSubmatch(s); m != nil {
		return LineMatch{Kind: LineEpic, ID: m[1], Title: trimTitle(m[2])}
	}
	if m := moduleRe.FindStringSubmatch(s); m != nil {
		if name := trimTitle(m[1]); name != "" {
			return LineMatch{Kind: LineModule, Name: name}
		}
	}
	return LineMatch{}
}

// stripDecoration removes markdown heading, emphasis and bullet characters
// around a line so decorated headings still match the patterns.
func stripDecoration(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "#*_`>•-–— \t")
	s = strings.TrimRight(s, "*_` \t")
	return strings.TrimSpace(s)
}

// trimTitle trims surrounding whitespace and decorative punctuation from a
// captured title or module name.
func trimTitle(s string) string {
	return strings.Trim(s, " \t*_`'\"-–—:;.,")
}
