package journal

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/fecgen/internal/accounts"
	"github.com/cleared-dev/fecgen/internal/anomaly"
	"github.com/cleared-dev/fecgen/internal/model"
	"github.com/cleared-dev/fecgen/internal/synth"
)

func TestRepair_ExcessDebit(t *testing.T) {
	lines := []model.LedgerLine{
		{JournalCode: "AC", EntryID: 1, AccountNum: "606100", Debit: dec("100.00")},
		{JournalCode: "AC", EntryID: 1, AccountNum: "401000", Credit: dec("80.00")},
	}

	result := Repair(lines)
	require.Len(t, result.Corrections, 1)
	assert.Empty(t, result.Unrepaired)

	c := result.Corrections[0]
	assert.Equal(t, 0, c.Index)
	assert.Equal(t, SideDebit, c.Side)
	assert.True(t, c.Before.Equal(dec("100.00")))
	assert.True(t, c.After.Equal(dec("80.00")))

	assert.True(t, lines[0].Debit.Equal(dec("80.00")), "debit: %s", lines[0].Debit)
	assert.True(t, lines[1].Credit.Equal(dec("80.00")))
	assert.True(t, Validate(lines).Valid())
}

func TestRepair_ExcessCredit(t *testing.T) {
	lines := []model.LedgerLine{
		{JournalCode: "VE", EntryID: 2, AccountNum: "411000", Debit: dec("150.00")},
		{JournalCode: "VE", EntryID: 2, AccountNum: "706000", Credit: dec("999.42")},
	}

	result := Repair(lines)
	require.Len(t, result.Corrections, 1)
	assert.Equal(t, SideCredit, result.Corrections[0].Side)
	assert.True(t, lines[1].Credit.Equal(dec("150.00")), "credit: %s", lines[1].Credit)
	assert.True(t, lines[0].Debit.Equal(dec("150.00")))
	assert.True(t, Validate(lines).Valid())
}

func TestRepair_PicksLargestLine(t *testing.T) {
	lines := []model.LedgerLine{
		{JournalCode: "OD", EntryID: 1, AccountNum: "606100", Debit: dec("30.00")},
		{JournalCode: "OD", EntryID: 1, AccountNum: "606400", Debit: dec("90.00")},
		{JournalCode: "OD", EntryID: 1, AccountNum: "401000", Credit: dec("100.00")},
	}

	result := Repair(lines)
	require.Len(t, result.Corrections, 1)
	assert.Equal(t, 1, result.Corrections[0].Index)
	assert.True(t, lines[0].Debit.Equal(dec("30.00")))
	assert.True(t, lines[1].Debit.Equal(dec("70.00")))
	assert.True(t, Validate(lines).Valid())
}

func TestRepair_LeavesBalancedEntries(t *testing.T) {
	lines := balancedEntry("BQ", 1, "512000", "411000", "42.00")
	lines[1].Credit = dec("41.99")

	result := Repair(lines)
	assert.Empty(t, result.Corrections)
	assert.True(t, lines[1].Credit.Equal(dec("41.99")), "within tolerance, untouched")
}

func TestRepair_Unrepairable(t *testing.T) {
	// Excess credit but no line carries a positive credit.
	lines := []model.LedgerLine{
		{JournalCode: "OD", EntryID: 3, AccountNum: "606100", Debit: dec("-50.00")},
		{JournalCode: "OD", EntryID: 3, AccountNum: "401000"},
	}

	result := Repair(lines)
	assert.Empty(t, result.Corrections)
	assert.Equal(t, []model.EntryKey{{JournalCode: "OD", EntryID: 3}}, result.Unrepaired)
	assert.False(t, Validate(lines).Valid(), "still reported after repair")
}

func TestRepair_AfterInjection(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	lines := synth.New(accounts.Default(), rng).Generate(synth.Params{
		Start:        date(2024, 1, 1),
		End:          date(2024, 12, 31),
		Transactions: 500,
	})
	anomaly.NewInjector(rng, anomaly.RoundAmount, anomaly.ThresholdAmount).Inject(lines, 0.1)
	SortLines(lines)

	before := Validate(lines)
	require.False(t, before.Valid(), "amount anomalies should unbalance some entries")

	result := Repair(lines)
	assert.Len(t, result.Corrections, len(before.Errors))
	assert.True(t, Validate(lines).Valid(), "errors: %v", Validate(lines).Messages())
}

func TestSortLines(t *testing.T) {
	lines := []model.LedgerLine{
		{JournalCode: "VE", EntryID: 1, AccountNum: "a"},
		{JournalCode: "AC", EntryID: 2, AccountNum: "b"},
		{JournalCode: "AC", EntryID: 1, AccountNum: "c"},
		{JournalCode: "VE", EntryID: 1, AccountNum: "d"},
		{JournalCode: "AC", EntryID: 10, AccountNum: "e"},
		{JournalCode: "AC", EntryID: 1, AccountNum: "f"},
	}
	SortLines(lines)

	var got []string
	for _, l := range lines {
		got = append(got, l.AccountNum)
	}
	assert.Equal(t, []string{"c", "f", "b", "e", "a", "d"}, got)
}
