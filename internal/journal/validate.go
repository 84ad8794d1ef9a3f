package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fecgen/internal/id"
	"github.com/cleared-dev/fecgen/internal/model"
)

// Tolerance is the largest per-entry deviation accepted as balanced.
var Tolerance = decimal.New(1, -2)

// ImbalanceError describes an entry whose debits and credits differ by more
// than Tolerance.
type ImbalanceError struct {
	Entry     model.EntryKey
	Deviation decimal.Decimal // sum(debit) - sum(credit)
}

func (e ImbalanceError) Error() string {
	return fmt.Sprintf("entry %s [%s]: unbalanced by %s", id.EcritureNum(e.Entry.JournalCode, e.Entry.EntryID), e.Entry.JournalCode, e.Deviation.StringFixed(2))
}

// Report is the outcome of a validation pass.
type Report struct {
	Entries int
	Errors  []ImbalanceError
}

// Valid reports whether every entry balances.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}

// Messages returns the error descriptions.
func (r Report) Messages() []string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return msgs
}

// group is the set of line indices forming one entry.
type group struct {
	key     model.EntryKey
	indices []int
}

// groupEntries groups line indices by entry, in order of first appearance.
func groupEntries(lines []model.LedgerLine) []group {
	pos := make(map[model.EntryKey]int)
	var groups []group
	for i, line := range lines {
		k := line.Key()
		p, seen := pos[k]
		if !seen {
			p = len(groups)
			pos[k] = p
			groups = append(groups, group{key: k})
		}
		groups[p].indices = append(groups[p].indices, i)
	}
	return groups
}

func totals(lines []model.LedgerLine, g group) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, i := range g.indices {
		debit = debit.Add(lines[i].Debit)
		credit = credit.Add(lines[i].Credit)
	}
	return debit, credit
}

func imbalanced(diff decimal.Decimal) bool {
	return diff.Abs().GreaterThan(Tolerance)
}

// Validate checks that every entry (lines sharing journal code and entry id)
// balances within Tolerance. It does not modify lines.
func Validate(lines []model.LedgerLine) Report {
	groups := groupEntries(lines)
	report := Report{Entries: len(groups)}
	for _, g := range groups {
		debit, credit := totals(lines, g)
		if diff := debit.Sub(credit); imbalanced(diff) {
			report.Errors = append(report.Errors, ImbalanceError{Entry: g.key, Deviation: diff})
		}
	}
	return report
}
