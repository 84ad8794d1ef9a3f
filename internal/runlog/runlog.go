package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of one file.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning" // written, but entries stayed imbalanced
	StatusFailed  Status = "failed"
)

// Entry is one row in the manifest.
type Entry struct {
	RunID        uuid.UUID
	Timestamp    time.Time
	File         string
	Format       string
	Company      string
	Siren        string
	Transactions int
	Lines        int
	AnomalyRate  float64
	Anomalies    int
	Repaired     int
	Residual     int
	Status       Status
	Error        string
}

// FileName is the manifest file name inside the output directory.
const FileName = "manifest.csv"

// Header is the CSV header for manifest.csv.
const Header = "run_id,timestamp,file,format,company,siren,transactions,lines,anomaly_rate,anomalies,repaired,residual,status,error"

const (
	numFields       = 14
	colRunID        = 0
	colTimestamp    = 1
	colFile         = 2
	colFormat       = 3
	colCompany      = 4
	colSiren        = 5
	colTransactions = 6
	colLines        = 7
	colAnomalyRate  = 8
	colAnomalies    = 9
	colRepaired     = 10
	colResidual     = 11
	colStatus       = 12
	colError        = 13
)

// NewRunID returns a fresh identifier shared by every row of one run.
func NewRunID() uuid.UUID {
	return uuid.New()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colRunID] = e.RunID.String()
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colFile] = e.File
	row[colFormat] = e.Format
	row[colCompany] = e.Company
	row[colSiren] = e.Siren
	row[colTransactions] = strconv.Itoa(e.Transactions)
	row[colLines] = strconv.Itoa(e.Lines)
	row[colAnomalyRate] = strconv.FormatFloat(e.AnomalyRate, 'f', 4, 64)
	row[colAnomalies] = strconv.Itoa(e.Anomalies)
	row[colRepaired] = strconv.Itoa(e.Repaired)
	row[colResidual] = strconv.Itoa(e.Residual)
	row[colStatus] = string(e.Status)
	row[colError] = e.Error
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	runID, err := uuid.Parse(record[colRunID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing run id %q: %w", record[colRunID], err)
	}
	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	rate, err := strconv.ParseFloat(record[colAnomalyRate], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing anomaly rate %q: %w", record[colAnomalyRate], err)
	}

	e := Entry{
		RunID:       runID,
		Timestamp:   ts,
		File:        record[colFile],
		Format:      record[colFormat],
		Company:     record[colCompany],
		Siren:       record[colSiren],
		AnomalyRate: rate,
		Status:      Status(record[colStatus]),
		Error:       record[colError],
	}

	counts := []struct {
		col int
		dst *int
	}{
		{colTransactions, &e.Transactions},
		{colLines, &e.Lines},
		{colAnomalies, &e.Anomalies},
		{colRepaired, &e.Repaired},
		{colResidual, &e.Residual},
	}
	for _, c := range counts {
		n, err := strconv.Atoi(record[c.col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing %s %q: %w", columnName(c.col), record[c.col], err)
		}
		*c.dst = n
	}
	return e, nil
}

func columnName(col int) string {
	return strings.Split(Header, ",")[col]
}

// Append writes entries to <dir>/manifest.csv, creating the directory, file
// and header if needed.
func Append(dir string, entries []Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <dir>/manifest.csv.
// Returns an empty slice if the file does not exist.
func Read(dir string) ([]Entry, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading manifest CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
