package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/reqsmith/storyscan/internal/docstream"
)

// TextParser handles plain text files. Blank lines delimit blocks.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) ([]docstream.Block, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var blocks []docstream.Block
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			blocks = append(blocks, docstream.TextBlock{Text: current.String()})
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}
