package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/fecgen/internal/fec"
	"github.com/cleared-dev/fecgen/internal/model"
)

func entry() []model.LedgerLine {
	day := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	base := model.LedgerLine{
		JournalCode: "VE", JournalLib: "Ventes", EntryID: 1,
		EntryDate: day, PieceDate: day, PieceRef: "VE035521",
		Label: "FACT CLIENT CLIENT A 000042", ValidDate: day,
	}
	debit, credit := base, base
	debit.AccountNum, debit.AccountLib = "411000", "Clients"
	debit.Debit, debit.Credit = decimal.RequireFromString("250.40"), decimal.Zero
	credit.AccountNum, credit.AccountLib = "706000", "Prestations de services"
	credit.Debit, credit.Credit = decimal.Zero, decimal.RequireFromString("250.40")
	return []model.LedgerLine{debit, credit}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("ledger.txt"))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(".txt", TextReader{})
	rd := r.Get("ledger.txt")
	require.NotNil(t, rd)
	assert.Equal(t, fec.FormatText, rd.Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("LEDGER.TXT"))
	assert.NotNil(t, r.Get("ledger.XLSX"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(".txt", TextReader{})
	assert.Panics(t, func() { r.Register(".TXT", TextReader{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, fec.FormatText, r.Get("a.txt").Format())
	assert.Equal(t, fec.FormatText, r.Get("a.csv").Format())
	assert.Equal(t, fec.FormatSpreadsheet, r.Get("a.xlsx").Format())
	assert.Nil(t, r.Get("a.pdf"))
}

func TestReadWriteFile(t *testing.T) {
	r := DefaultRegistry()
	dir := t.TempDir()

	for _, name := range []string{"fec.txt", "fec.csv", "fec.xlsx"} {
		path := filepath.Join(dir, name)
		require.NoError(t, r.WriteFile(path, entry()))

		lines, err := r.ReadFile(path)
		require.NoError(t, err, name)
		require.Len(t, lines, 2)
		assert.Equal(t, "411000", lines[0].AccountNum)
		assert.True(t, lines[1].Credit.Equal(decimal.RequireFromString("250.40")), name)
	}
}

func TestReadFile_Errors(t *testing.T) {
	r := DefaultRegistry()
	dir := t.TempDir()

	_, err := r.ReadFile(filepath.Join(dir, "notes.md"))
	assert.ErrorContains(t, err, "no reader")

	_, err = r.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("not|a|fec\n"), 0o644))
	_, err = r.ReadFile(bad)
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.xlsx", "manifest.csv", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))

	files, err := DefaultRegistry().Scan(dir, "manifest.csv")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.xlsx", files[0].Name)
	assert.Equal(t, "b.txt", files[1].Name)
	assert.Equal(t, int64(4), files[0].Size)
}

func TestScan_SkipsUnlisted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"fec.txt", "chart.csv", "other.CSV"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
	}

	r := DefaultRegistry()
	files, err := r.Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "fec.txt", files[0].Name)

	// Named explicitly, a .csv is still read.
	paths, err := r.Expand([]string{filepath.Join(dir, "chart.csv")})
	require.NoError(t, err)
	assert.Len(t, paths, 1)
	assert.NotNil(t, r.Get("chart.csv"))
}

func TestScan_MissingDir(t *testing.T) {
	files, err := DefaultRegistry().Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.txt"), []byte("data"), 0o644))
	single := filepath.Join(t.TempDir(), "y.txt")
	require.NoError(t, os.WriteFile(single, []byte("data"), 0o644))

	paths, err := DefaultRegistry().Expand([]string{dir, single})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "x.txt"), single}, paths)

	_, err = DefaultRegistry().Expand([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}
