package journal

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/fecgen/internal/accounts"
	"github.com/cleared-dev/fecgen/internal/model"
	"github.com/cleared-dev/fecgen/internal/synth"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func balancedEntry(journal string, entryID int, debitAcct, creditAcct, amount string) []model.LedgerLine {
	return []model.LedgerLine{
		{
			JournalCode: journal,
			EntryID:     entryID,
			EntryDate:   date(2024, 1, 15),
			AccountNum:  debitAcct,
			Debit:       dec(amount),
		},
		{
			JournalCode: journal,
			EntryID:     entryID,
			EntryDate:   date(2024, 1, 15),
			AccountNum:  creditAcct,
			Credit:      dec(amount),
		},
	}
}

func TestValidate_Balanced(t *testing.T) {
	lines := balancedEntry("AC", 1, "606100", "401000", "100.00")
	report := Validate(lines)
	assert.True(t, report.Valid())
	assert.Empty(t, report.Errors)
	assert.Equal(t, 1, report.Entries)
}

func TestValidate_Unbalanced(t *testing.T) {
	lines := balancedEntry("AC", 1, "606100", "401000", "100.00")
	lines[1].Credit = dec("99.00")

	report := Validate(lines)
	require.False(t, report.Valid())
	require.Len(t, report.Errors, 1)
	assert.Equal(t, model.EntryKey{JournalCode: "AC", EntryID: 1}, report.Errors[0].Entry)
	assert.True(t, report.Errors[0].Deviation.Equal(dec("1.00")))
	assert.Equal(t, "entry AC00001 [AC]: unbalanced by 1.00", report.Errors[0].Error())
}

func TestValidate_SignedDeviation(t *testing.T) {
	lines := balancedEntry("VE", 4, "411000", "706000", "80.00")
	lines[1].Credit = dec("100.00")

	report := Validate(lines)
	require.Len(t, report.Errors, 1)
	assert.True(t, report.Errors[0].Deviation.Equal(dec("-20.00")))
	assert.Equal(t, []string{"entry VE00004 [VE]: unbalanced by -20.00"}, report.Messages())
}

func TestValidate_Tolerance(t *testing.T) {
	lines := balancedEntry("BQ", 1, "512000", "411000", "100.00")

	lines[1].Credit = dec("99.99")
	assert.True(t, Validate(lines).Valid(), "0.01 is within tolerance")

	lines[1].Credit = dec("99.989")
	assert.False(t, Validate(lines).Valid(), "0.011 is outside tolerance")
}

func TestValidate_GroupsByJournalAndEntry(t *testing.T) {
	// Same entry id in two journals forms two entries.
	lines := append(balancedEntry("AC", 1, "606100", "401000", "50.00"), balancedEntry("VE", 1, "411000", "706000", "75.00")...)
	report := Validate(lines)
	assert.True(t, report.Valid())
	assert.Equal(t, 2, report.Entries)

	// Swapping one credit across journals breaks both.
	lines[1].Credit, lines[3].Credit = lines[3].Credit, lines[1].Credit
	report = Validate(lines)
	assert.Len(t, report.Errors, 2)
}

func TestValidate_MultiLineBalanced(t *testing.T) {
	lines := []model.LedgerLine{
		{JournalCode: "OD", EntryID: 1, AccountNum: "606100", Debit: dec("60.00")},
		{JournalCode: "OD", EntryID: 1, AccountNum: "606400", Debit: dec("40.00")},
		{JournalCode: "OD", EntryID: 1, AccountNum: "401000", Credit: dec("100.00")},
	}
	assert.True(t, Validate(lines).Valid())
}

func TestValidate_Empty(t *testing.T) {
	report := Validate(nil)
	assert.True(t, report.Valid())
	assert.Zero(t, report.Entries)
}

func TestValidate_Idempotent(t *testing.T) {
	lines := append(balancedEntry("AC", 1, "606100", "401000", "10.00"), balancedEntry("AC", 2, "606100", "401000", "20.00")...)
	lines[3].Credit = dec("25.00")

	first := Validate(lines)
	second := Validate(lines)
	assert.Equal(t, first, second)
}

func TestValidate_GeneratedLedger(t *testing.T) {
	g := synth.New(accounts.Default(), rand.New(rand.NewPCG(3, 4)))
	lines := g.Generate(synth.Params{Start: date(2024, 1, 1), End: date(2024, 1, 31), Transactions: 10})
	require.Len(t, lines, 20)

	report := Validate(lines)
	assert.True(t, report.Valid(), "errors: %v", report.Messages())
	assert.Equal(t, 10, report.Entries)
}
