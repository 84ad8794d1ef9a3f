package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

var testRunID = uuid.MustParse("6f1c2a4e-8d3b-4c5a-9e7f-0a1b2c3d4e5f")

func testEntry() Entry {
	return Entry{
		RunID:        testRunID,
		Timestamp:    testTime,
		File:         "FEC_GENERATED.txt",
		Format:       "text",
		Company:      "ENTREPRISE EXEMPLE SAS",
		Siren:        "123456789",
		Transactions: 500,
		Lines:        1000,
		AnomalyRate:  0.05,
		Anomalies:    50,
		Repaired:     31,
		Residual:     0,
		Status:       StatusOK,
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "FEC_GENERATED.txt", entries[0].File)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.File = "FEC_ENTREPRISE_2_2024.xlsx"
	e2.Status = StatusFailed
	e2.Error = "disk full, retry later"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "FEC_GENERATED.txt", entries[0].File)
	assert.Equal(t, StatusFailed, entries[1].Status)
	assert.Equal(t, "disk full, retry later", entries[1].Error)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "run_id,"))
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	original.Status = StatusWarning
	original.Residual = 2
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	got.Timestamp = original.Timestamp
	assert.Equal(t, original, got)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 14 fields")
}

func TestUnmarshalEntry_BadCount(t *testing.T) {
	row := MarshalEntry(testEntry())
	row[colLines] = "many"
	_, err := UnmarshalEntry(row)
	assert.ErrorContains(t, err, "parsing lines")
}

func TestUnmarshalEntry_BadRunID(t *testing.T) {
	row := MarshalEntry(testEntry())
	row[colRunID] = "not-a-uuid"
	_, err := UnmarshalEntry(row)
	assert.ErrorContains(t, err, "parsing run id")
}

func TestMarshalEntry_Format(t *testing.T) {
	row := MarshalEntry(testEntry())
	assert.Len(t, row, 14)
	assert.Equal(t, testRunID.String(), row[colRunID])
	assert.Equal(t, "2025-01-15T10:30:00Z", row[colTimestamp])
	assert.Equal(t, "0.0500", row[colAnomalyRate])
	assert.Equal(t, "ok", row[colStatus])
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.NotEqual(t, uuid.Nil, a)
	assert.NotEqual(t, a, b)
}

func TestAppend_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
