package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/reqsmith/storyscan/internal/docstream"
)

// CSVParser handles CSV files. The whole file becomes a single table block.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) ([]docstream.Block, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // allow ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	return []docstream.Block{docstream.TableBlock{Rows: records}}, nil
}
