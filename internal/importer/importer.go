package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cleared-dev/fecgen/internal/fec"
	"github.com/cleared-dev/fecgen/internal/model"
)

// Reader decodes one FEC file format.
type Reader interface {
	Read(r io.Reader) ([]model.LedgerLine, error)
	Format() fec.Format
}

// TextReader reads pipe-delimited FEC text.
type TextReader struct{}

func (TextReader) Read(r io.Reader) ([]model.LedgerLine, error) {
	return fec.ReadText(r)
}

func (TextReader) Format() fec.Format {
	return fec.FormatText
}

// SpreadsheetReader reads FEC workbooks.
type SpreadsheetReader struct{}

func (SpreadsheetReader) Read(r io.Reader) ([]model.LedgerLine, error) {
	return fec.ReadSpreadsheet(r)
}

func (SpreadsheetReader) Format() fec.Format {
	return fec.FormatSpreadsheet
}

// Registry maps file extensions to readers.
type Registry struct {
	readers  map[string]Reader
	unlisted map[string]bool // read when named, never picked up by Scan
}

// FileInfo describes an FEC file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		readers:  make(map[string]Reader),
		unlisted: make(map[string]bool),
	}
}

// Register adds a reader for ext (".txt"). Panics on duplicate extension.
func (r *Registry) Register(ext string, rd Reader) {
	key := strings.ToLower(ext)
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader extension: " + key)
	}
	r.readers[key] = rd
}

// RegisterUnlisted adds a reader for ext that only serves files named
// explicitly. Scan skips the extension.
func (r *Registry) RegisterUnlisted(ext string, rd Reader) {
	r.Register(ext, rd)
	r.unlisted[strings.ToLower(ext)] = true
}

// Get returns the reader for path's extension, or nil.
func (r *Registry) Get(path string) Reader {
	return r.readers[strings.ToLower(filepath.Ext(path))]
}

// DefaultRegistry returns a registry reading .txt and .csv as text and .xlsx
// as a spreadsheet. Directory scans only pick up .txt and .xlsx, since a .csv
// next to the ledgers is as likely a manifest or chart as an FEC.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".txt", TextReader{})
	r.RegisterUnlisted(".csv", TextReader{})
	r.Register(".xlsx", SpreadsheetReader{})
	return r
}

// ReadFile decodes the FEC file at path.
func (r *Registry) ReadFile(path string) ([]model.LedgerLine, error) {
	rd := r.Get(path)
	if rd == nil {
		return nil, fmt.Errorf("no reader for %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	lines, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// WriteFile rewrites path in the format its extension maps to.
func (r *Registry) WriteFile(path string, lines []model.LedgerLine) error {
	rd := r.Get(path)
	if rd == nil {
		return fmt.Errorf("no reader for %s", path)
	}
	return fec.WriteFile(path, rd.Format(), lines)
}

// Scan returns the readable files directly inside dir, sorted by name. Names
// listed in skip and unlisted extensions are ignored. A missing directory yields no files.
func (r *Registry) Scan(dir string, skip ...string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading dir %s: %w", dir, err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || slices.Contains(skip, e.Name()) {
			continue
		}
		if r.Get(e.Name()) == nil || r.unlisted[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// Expand resolves each argument to files: directories are scanned, plain
// files are kept as given.
func (r *Registry) Expand(paths []string, skip ...string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		files, err := r.Scan(p, skip...)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			out = append(out, f.Path)
		}
	}
	return out, nil
}
