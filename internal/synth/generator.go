package synth

import (
	"math/rand/v2"
	"time"

	"github.com/cleared-dev/fecgen/internal/accounts"
	"github.com/cleared-dev/fecgen/internal/model"
)

// Params holds the inputs of one generation run.
type Params struct {
	Start        time.Time
	End          time.Time // inclusive
	Transactions int
	Journals     []model.Journal // nil = every journal of the reference data
}

// Generator synthesizes ledger lines from reference data and a random source.
type Generator struct {
	ref *accounts.Service
	rng *rand.Rand
}

// New creates a Generator. The random source is owned by the caller so runs
// can be reproduced with a fixed seed.
func New(ref *accounts.Service, rng *rand.Rand) *Generator {
	return &Generator{ref: ref, rng: rng}
}

// Generate produces 2 x p.Transactions lines: for each transaction one
// debit-only and one credit-only line of equal amount sharing an entry id.
// Lines are returned in generation order.
func (g *Generator) Generate(p Params) []model.LedgerLine {
	journals := p.Journals
	if len(journals) == 0 {
		journals = g.ref.Journals()
	}
	if p.Transactions <= 0 || len(journals) == 0 || len(g.ref.All()) == 0 {
		return nil
	}

	lines := make([]model.LedgerLine, 0, 2*p.Transactions)
	next := make(map[string]int, len(journals))

	for range p.Transactions {
		journal := pick(g.rng, journals)
		date := TransactionDate(g.rng, p.Start, p.End)

		relevant := g.ref.AccountsFor(journal.Code)
		if len(relevant) == 0 {
			relevant = g.ref.All()
		}
		debitAcct := pick(g.rng, relevant)
		creditAcct := g.counterAccount(debitAcct, relevant)

		amount := Amount(g.rng, debitAcct)
		pieceRef := PieceRef(g.rng, journal.Code, date)
		validDate := ValidDate(g.rng, date, p.End)
		label := Label(g.rng, journal.Code, debitAcct, date)

		next[journal.Code]++
		base := model.LedgerLine{
			JournalCode:     journal.Code,
			JournalLib:      journal.Lib,
			EntryID:         next[journal.Code],
			TransactionTime: date,
			EntryDate:       date,
			PieceRef:        pieceRef,
			PieceDate:       date,
			Label:           label,
			ValidDate:       validDate,
		}

		debitLine := g.side(base, debitAcct, p.End)
		debitLine.Debit = amount
		creditLine := g.side(base, creditAcct, p.End)
		creditLine.Credit = amount

		lines = append(lines, debitLine, creditLine)
	}
	return lines
}

// counterAccount picks a credit account coherent with the debit account,
// falling back to any other relevant account, then any other account.
func (g *Generator) counterAccount(debit model.Account, relevant []model.Account) model.Account {
	if candidates := g.ref.CounterAccountsFor(debit); len(candidates) > 0 {
		return pick(g.rng, candidates)
	}
	if candidates := excluding(relevant, debit.Num); len(candidates) > 0 {
		return pick(g.rng, candidates)
	}
	if candidates := excluding(g.ref.All(), debit.Num); len(candidates) > 0 {
		return pick(g.rng, candidates)
	}
	return debit
}

// side fills the account, auxiliary and lettering fields of one line.
func (g *Generator) side(base model.LedgerLine, acct model.Account, end time.Time) model.LedgerLine {
	line := base
	line.AccountNum = acct.Num
	line.AccountLib = acct.Lib
	if aux := g.ref.Auxiliaries(acct.Num); len(aux) > 0 {
		entity := pick(g.rng, aux)
		line.AuxNum = entity.Code
		line.AuxLib = entity.Name
	}
	line.LetteringCode, line.LetteringDate = Lettering(g.rng, acct, end)
	return line
}

func excluding(accts []model.Account, num string) []model.Account {
	var result []model.Account
	for _, a := range accts {
		if a.Num != num {
			result = append(result, a)
		}
	}
	return result
}
