package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/reqsmith/storyscan/internal/docstream"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. GFM pipe tables
// become table blocks; everything else flattens to text blocks.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) ([]docstream.Block, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var blocks []docstream.Block
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *east.Table:
			if rows := mdTableRows(node, src); len(rows) > 0 {
				blocks = append(blocks, docstream.TableBlock{Rows: rows})
			}
		case *ast.Heading:
			if t := strings.TrimSpace(string(node.Text(src))); t != "" {
				blocks = append(blocks, docstream.TextBlock{Text: t})
			}
		default:
			if t := extractText(n, src); t != "" {
				blocks = append(blocks, docstream.TextBlock{Text: t})
			}
		}
	}
	return blocks, nil
}

// mdTableRows converts a goldmark table node into a row-major cell grid.
// The header row comes first, in source order.
func mdTableRows(tbl *east.Table, src []byte) [][]string {
	var rows [][]string
	for r := tbl.FirstChild(); r != nil; r = r.NextSibling() {
		switch r.(type) {
		case *east.TableHeader, *east.TableRow:
			var cells []string
			for c := r.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, strings.TrimSpace(string(c.Text(src))))
			}
			rows = append(rows, cells)
		}
	}
	return rows
}

// extractText gets the text content of a goldmark AST node. Soft and hard
// line breaks become newlines so each source line stays a separate line.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte('\n')
			}
			return
		case *ast.String:
			buf.Write(t.Value)
			return
		}
		if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
			// Leaf blocks without inline children (code blocks) keep raw lines.
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(src))
			}
			return
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if c.Type() == ast.TypeBlock && c.PreviousSibling() != nil {
				buf.WriteByte('\n')
			}
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
