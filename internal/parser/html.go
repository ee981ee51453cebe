package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/reqsmith/storyscan/internal/docstream"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Headings, paragraphs and list items become
// text blocks; <table> subtrees become table blocks.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) ([]docstream.Block, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var blocks []docstream.Block

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "table":
				if rows := htmlTableRows(n); len(rows) > 0 {
					blocks = append(blocks, docstream.TableBlock{Rows: rows})
				}
				return
			case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "blockquote":
				if t := textContent(n); t != "" {
					blocks = append(blocks, docstream.TextBlock{Text: t})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Find <body> or use whole document.
	body := findBody(doc)
	if body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return blocks, nil
}

// htmlTableRows collects the <tr> rows of a table element into a cell grid.
// thead/tbody wrappers are transparent; nested tables are not descended into.
func htmlTableRows(tbl *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "th" || c.Data == "td") {
					cells = append(cells, textContent(c))
				}
			}
			rows = append(rows, cells)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := tbl.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return rows
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
