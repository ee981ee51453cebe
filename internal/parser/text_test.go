package parser

import (
	"strings"
	"testing"

	"github.com/reqsmith/storyscan/internal/docstream"
)

func textBlockAt(t *testing.T, blocks []docstream.Block, i int) docstream.TextBlock {
	t.Helper()
	if i >= len(blocks) {
		t.Fatalf("expected at least %d blocks, got %d", i+1, len(blocks))
	}
	tb, ok := blocks[i].(docstream.TextBlock)
	if !ok {
		t.Fatalf("block[%d]: expected TextBlock, got %T", i, blocks[i])
	}
	return tb
}

func tableBlockAt(t *testing.T, blocks []docstream.Block, i int) docstream.TableBlock {
	t.Helper()
	if i >= len(blocks) {
		t.Fatalf("expected at least %d blocks, got %d", i+1, len(blocks))
	}
	tb, ok := blocks[i].(docstream.TableBlock)
	if !ok {
		t.Fatalf("block[%d]: expected TableBlock, got %T", i, blocks[i])
	}
	return tb
}

func TestTextParser_BasicParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	p := &TextParser{}
	blocks, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"First paragraph line one.\nFirst paragraph line two.",
		"Second paragraph.",
		"Third paragraph.",
	}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for i, w := range want {
		if got := textBlockAt(t, blocks, i).Text; got != w {
			t.Errorf("block[%d]: expected %q, got %q", i, w, got)
		}
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	blocks, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("expected 0 blocks for empty input, got %d", len(blocks))
	}
}

func TestTextParser_SingleLine(t *testing.T) {
	p := &TextParser{}
	blocks, err := p.Parse(strings.NewReader("Hello world"), "single.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if got := textBlockAt(t, blocks, 0).Text; got != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", got)
	}
}

func TestTextParser_MultipleBlankLines(t *testing.T) {
	// Multiple consecutive blank lines should not produce empty blocks.
	input := "Para one.\n\n\n\nPara two."
	p := &TextParser{}
	blocks, err := p.Parse(strings.NewReader(input), "gaps.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestTextParser_WhitespaceOnlyLines(t *testing.T) {
	// Lines with only whitespace should be treated as blank.
	input := "Para one.\n   \nPara two."
	p := &TextParser{}
	blocks, err := p.Parse(strings.NewReader(input), "ws.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}
