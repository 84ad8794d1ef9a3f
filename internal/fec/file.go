package fec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cleared-dev/fecgen/internal/model"
)

// Format is an FEC output format.
type Format string

const (
	FormatText        Format = "text"
	FormatSpreadsheet Format = "spreadsheet"
)

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	if f == FormatSpreadsheet {
		return ".xlsx"
	}
	return ".txt"
}

// Write writes lines to w in format f.
func (f Format) Write(w io.Writer, lines []model.LedgerLine) error {
	switch f {
	case FormatText:
		return WriteText(w, lines)
	case FormatSpreadsheet:
		return WriteSpreadsheet(w, lines)
	default:
		return fmt.Errorf("unknown FEC format %q", string(f))
	}
}

// WriteFile writes lines to path in format f, replacing any existing file.
// The whole file is rendered before path is touched and then swapped in by
// rename, so a failed write leaves the previous content in place.
func WriteFile(path string, f Format, lines []model.LedgerLine) (err error) {
	var buf bytes.Buffer
	if err := f.Write(&buf, lines); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
