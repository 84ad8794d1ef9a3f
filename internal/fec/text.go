package fec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/cleared-dev/fecgen/internal/model"
)

// ErrNonASCII is returned when a field cannot be written to a text FEC.
var ErrNonASCII = errors.New("non-ASCII character")

// Delimiter separates FEC text columns.
const Delimiter = '|'

func checkASCII(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return fmt.Errorf("%w in %q", ErrNonASCII, s)
		}
	}
	return nil
}

// MarshalLine converts a line to a text FEC row.
func MarshalLine(line model.LedgerLine) []string {
	rec := Record(line, TextAmount)
	row := make([]string, len(rec))
	for i, v := range rec {
		row[i] = fmt.Sprint(v)
	}
	return row
}

// WriteText writes lines as a pipe-delimited FEC with a header row. Every
// field must be plain ASCII.
func WriteText(w io.Writer, lines []model.LedgerLine) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	cw.UseCRLF = true

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range lines {
		row := MarshalLine(line)
		for col, field := range row {
			if err := checkASCII(field); err != nil {
				return fmt.Errorf("row %d column %s: %w", i+2, Columns[col], err)
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadText reads a pipe-delimited FEC written by WriteText.
func ReadText(r io.Reader) ([]model.LedgerLine, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading FEC text: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if !slices.Equal(records[0], Columns) {
		return nil, fmt.Errorf("unexpected FEC header %v", records[0])
	}

	var lines []model.LedgerLine
	for i, rec := range records[1:] {
		line, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}
