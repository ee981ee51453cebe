package parser

import "testing"

func TestForFileCoversSupportedExtensions(t *testing.T) {
	// Every extension the upload gate accepts must resolve to a parser.
	for ext := range SupportedExtensions {
		if _, err := ForFile("doc" + ext); err != nil {
			t.Errorf("%s: supported extension has no parser: %v", ext, err)
		}
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename  string
		supported bool
	}{
		{"plan.md", true},
		{"plan.markdown", true},
		{"PLAN.MD", true},
		{"stories.docx", true},
		{"stories.csv", true},
		{"report.pdf", true},
		{"page.html", true},
		{"page.htm", true},
		{"notes.txt", true},
		{"image.png", false},
		{"data.xlsx", false},
		{"noextension", false},
	}
	for _, tt := range tests {
		if got := IsSupportedExtension(tt.filename); got != tt.supported {
			t.Errorf("IsSupportedExtension(%q): expected %v, got %v", tt.filename, tt.supported, got)
		}
		_, err := ForFile(tt.filename)
		if tt.supported && err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", tt.filename, err)
		}
		if !tt.supported && err == nil {
			t.Errorf("ForFile(%q): expected error for unsupported extension", tt.filename)
		}
	}
}
