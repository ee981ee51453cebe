package docstream

// Block is one unit in a document's flat block sequence. A parsed document
// is a []Block in source order; exactly two kinds exist, TextBlock and
// TableBlock.
type Block interface {
	isBlock()
}

// TextBlock is a run of free text. It may span multiple lines.
type TextBlock struct {
	Text string
}

// TableBlock is a table as a row-major cell grid. Rows may be ragged; short
// rows read as empty trailing cells.
type TableBlock struct {
	Rows [][]string
}

func (TextBlock) isBlock()  {}
func (TableBlock) isBlock() {}
