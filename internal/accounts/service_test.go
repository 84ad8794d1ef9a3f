package accounts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/fecgen/internal/model"
)

func TestDefault(t *testing.T) {
	svc := Default()

	assert.Len(t, svc.All(), len(DefaultChart()))
	assert.Len(t, svc.Journals(), 5)
}

func TestDefaultChart_ASCIIAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range DefaultChart() {
		require.Len(t, a.Num, 6, "account %s", a.Num)
		assert.False(t, seen[a.Num], "duplicate account %s", a.Num)
		seen[a.Num] = true
		assert.Equal(t, a.Lib, Sanitize(a.Lib), "label of %s is not ASCII", a.Num)
	}
	assert.True(t, seen[SuspenseAccount.Num])
	assert.True(t, seen[PrepaidExpensesAccount.Num])
}

func TestGetExists(t *testing.T) {
	svc := Default()

	acct, ok := svc.Get("512000")
	assert.True(t, ok)
	assert.Equal(t, "Banque principale", acct.Lib)

	_, ok = svc.Get("999999")
	assert.False(t, ok)

	assert.True(t, svc.Exists("401000"))
	assert.False(t, svc.Exists("40100"))
}

func allHavePrefix(accts []model.Account, prefixes ...string) bool {
	for _, a := range accts {
		ok := false
		for _, p := range prefixes {
			if strings.HasPrefix(a.Num, p) {
				ok = true
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func TestAccountsFor(t *testing.T) {
	svc := Default()

	tests := []struct {
		journal  string
		prefixes []string
	}{
		{model.JournalPurchases, []string{"60", "61", "62", "401"}},
		{model.JournalSales, []string{"41", "70"}},
		{model.JournalBank, []string{"5", "40", "41", "6", "7"}},
	}
	for _, tt := range tests {
		got := svc.AccountsFor(tt.journal)
		require.NotEmpty(t, got, "journal %s", tt.journal)
		assert.True(t, allHavePrefix(got, tt.prefixes...), "journal %s", tt.journal)
	}

	assert.Len(t, svc.AccountsFor(model.JournalCash), len(svc.All()))
	assert.Len(t, svc.AccountsFor(model.JournalGeneral), len(svc.All()))
	assert.Len(t, svc.AccountsFor("ZZ"), len(svc.All()), "unknown journal degrades to whole chart")
}

func TestAccountsFor_Purchases(t *testing.T) {
	got := Default().AccountsFor(model.JournalPurchases)
	nums := make(map[string]bool)
	for _, a := range got {
		nums[a.Num] = true
	}
	assert.True(t, nums["401000"])
	assert.True(t, nums["606100"])
	assert.False(t, nums["403000"], "403 is not a purchases account")
	assert.False(t, nums["635000"])
}

func TestCounterAccountsFor(t *testing.T) {
	svc := Default()

	tests := []struct {
		debit    string
		prefixes []string
	}{
		{"606100", []string{"4", "5"}},
		{"218300", []string{"404", "512"}},
		{"401000", []string{"5"}},
	}
	for _, tt := range tests {
		debit, ok := svc.Get(tt.debit)
		require.True(t, ok)
		got := svc.CounterAccountsFor(debit)
		require.NotEmpty(t, got, "debit %s", tt.debit)
		assert.True(t, allHavePrefix(got, tt.prefixes...), "debit %s", tt.debit)
	}
}

func TestCounterAccountsFor_FixedAsset(t *testing.T) {
	debit, _ := Default().Get("205000")
	got := Default().CounterAccountsFor(debit)

	var nums []string
	for _, a := range got {
		nums = append(nums, a.Num)
	}
	assert.ElementsMatch(t, []string{"404000", "512000", "512100"}, nums)
}

func TestCounterAccountsFor_DifferentPrefix(t *testing.T) {
	svc := Default()
	debit, _ := svc.Get("411000")

	got := svc.CounterAccountsFor(debit)
	require.NotEmpty(t, got)
	for _, a := range got {
		assert.NotEqual(t, "411", a.Prefix())
	}
	assert.Len(t, got, len(svc.All())-1)
}

func TestCounterAccountsFor_Empty(t *testing.T) {
	svc := NewService([]model.Account{{Num: "606100", Lib: "Electricite"}}, DefaultJournals(), nil)
	debit, _ := svc.Get("606100")
	assert.Empty(t, svc.CounterAccountsFor(debit))
}

func TestAuxiliaries(t *testing.T) {
	svc := Default()

	assert.Len(t, svc.Auxiliaries("401000"), 10)
	assert.Len(t, svc.Auxiliaries("411000"), 10)
	assert.Equal(t, "F00001", svc.Auxiliaries("401000")[0].Code)
	assert.Nil(t, svc.Auxiliaries("512000"))
}

func TestSaveLoadChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "chart.csv")
	require.NoError(t, Default().Save(path))

	svc, err := LoadChart(path)
	require.NoError(t, err)
	assert.Equal(t, Default().All(), svc.All())
	assert.Len(t, svc.Journals(), 5)
}

func TestLoadChart_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.csv")
	require.NoError(t, os.WriteFile(path, []byte("account_num,account_lib\n"), 0o644))

	_, err := LoadChart(path)
	require.Error(t, err)
}

func TestLoadChart_NotFound(t *testing.T) {
	_, err := LoadChart(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
