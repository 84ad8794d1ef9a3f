package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/fecgen/internal/model"
)

// Service provides in-memory lookup over the chart of accounts, the journal
// list and the auxiliary ledger directory.
type Service struct {
	accounts    []model.Account
	byNum       map[string]model.Account
	journals    []model.Journal
	auxiliaries map[string][]model.AuxiliaryEntity
}

// NewService creates a Service from reference tables. Account order is kept
// so that random picks are reproducible under a fixed seed.
func NewService(accounts []model.Account, journals []model.Journal, auxiliaries map[string][]model.AuxiliaryEntity) *Service {
	byNum := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byNum[a.Num] = a
	}
	return &Service{
		accounts:    accounts,
		byNum:       byNum,
		journals:    journals,
		auxiliaries: auxiliaries,
	}
}

// Default returns a Service over the built-in reference data.
func Default() *Service {
	return NewService(DefaultChart(), DefaultJournals(), DefaultAuxiliaries())
}

// LoadChart reads a chart CSV and returns a Service combining it with the
// built-in journals and auxiliary directory.
func LoadChart(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	if len(accts) == 0 {
		return nil, fmt.Errorf("chart of accounts %s is empty", path)
	}
	return NewService(accts, DefaultJournals(), DefaultAuxiliaries()), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by number.
func (s *Service) Get(num string) (model.Account, bool) {
	a, ok := s.byNum[num]
	return a, ok
}

// Exists reports whether an account number exists.
func (s *Service) Exists(num string) bool {
	_, ok := s.byNum[num]
	return ok
}

// Journals returns the journal list.
func (s *Service) Journals() []model.Journal {
	return s.journals
}

// Auxiliaries returns the auxiliary entities attached to the account's
// 3-digit prefix, or nil when the prefix has no sub-ledger.
func (s *Service) Auxiliaries(accountNum string) []model.AuxiliaryEntity {
	return s.auxiliaries[model.Prefix(accountNum)]
}

// AccountsFor returns the accounts relevant to a journal. Unknown journal
// codes get the whole chart.
func (s *Service) AccountsFor(journalCode string) []model.Account {
	switch journalCode {
	case model.JournalPurchases:
		return s.withPrefix("60", "61", "62", "401")
	case model.JournalSales:
		return s.withPrefix("41", "70")
	case model.JournalBank:
		return s.withPrefix("5", "40", "41", "6", "7")
	default:
		return s.accounts
	}
}

// CounterAccountsFor returns the accounts that make a coherent credit side
// for the given debit account. The result may be empty; callers fall back
// to any relevant account other than the debit account.
func (s *Service) CounterAccountsFor(debit model.Account) []model.Account {
	switch {
	case debit.Class() == model.ClassExpense:
		return s.withClass(model.ClassThirdParty, model.ClassFinancial)
	case debit.Class() == model.ClassFixedAsset:
		return s.withPrefix("404", "512")
	case strings.HasPrefix(debit.Num, "401"):
		return s.withClass(model.ClassFinancial)
	}

	prefix := debit.Prefix()
	var result []model.Account
	for _, a := range s.accounts {
		if a.Prefix() != prefix {
			result = append(result, a)
		}
	}
	return result
}

func (s *Service) withPrefix(prefixes ...string) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		for _, p := range prefixes {
			if strings.HasPrefix(a.Num, p) {
				result = append(result, a)
				break
			}
		}
	}
	return result
}

func (s *Service) withClass(classes ...model.AccountClass) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		for _, c := range classes {
			if a.Class() == c {
				result = append(result, a)
				break
			}
		}
	}
	return result
}

// Save writes the chart of accounts to path as CSV.
func (s *Service) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating chart dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
