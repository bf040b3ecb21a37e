// Package dataset loads the denormalized review export from disk.
package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"reviewpulse/internal/etl"

	"github.com/pkg/errors"
)

// CSVLoader reads the denormalized review export, one product per row with
// comma-joined user and review lists inside individual cells.
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a new CSV loader for the given file path.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load reads the whole export into header-mapped source records. Rows
// shorter than the header are padded with empty fields so a ragged export
// still loads.
func (l *CSVLoader) Load() ([]etl.SourceRecord, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Cells hold comma-joined lists, so column counts per row stay as the
	// writer produced them. Disable the reader's per-row field check.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var records []etl.SourceRecord
	lineNum := 1

	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(row) > len(header) {
			return nil, errors.Errorf("invalid row at line %d: expected at most %d columns, got %d", lineNum, len(header), len(row))
		}

		record := make(etl.SourceRecord, len(header))
		for i, field := range header {
			if i < len(row) {
				record[field] = row[i]
			} else {
				record[field] = ""
			}
		}

		records = append(records, record)
	}

	return records, nil
}
