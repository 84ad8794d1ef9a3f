package journal

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fecgen/internal/model"
)

// Side is the side of a line adjusted by a correction.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Correction records one amount adjustment made by Repair.
type Correction struct {
	Entry  model.EntryKey
	Index  int // position in the repaired slice
	Side   Side
	Before decimal.Decimal
	After  decimal.Decimal
}

// RepairResult lists what Repair changed and what it could not fix.
type RepairResult struct {
	Corrections []Correction
	Unrepaired  []model.EntryKey
}

// Repair balances imbalanced entries in place, once. For excess debit the
// largest positive debit line is reduced by the difference; for excess
// credit the largest positive credit line is reduced by the difference.
// Entries with no positive line on the excess side are left as they are and
// listed in Unrepaired. Only one line per entry is touched, so a follow-up
// Validate is not guaranteed to pass.
func Repair(lines []model.LedgerLine) RepairResult {
	var result RepairResult
	for _, g := range groupEntries(lines) {
		debit, credit := totals(lines, g)
		diff := debit.Sub(credit)
		if !imbalanced(diff) {
			continue
		}

		side := SideDebit
		if diff.IsNegative() {
			side = SideCredit
		}
		target, ok := largest(lines, g, side)
		if !ok {
			result.Unrepaired = append(result.Unrepaired, g.key)
			continue
		}

		line := &lines[target]
		c := Correction{Entry: g.key, Index: target, Side: side}
		if side == SideDebit {
			c.Before = line.Debit
			line.Debit = line.Debit.Sub(diff)
			c.After = line.Debit
		} else {
			c.Before = line.Credit
			line.Credit = line.Credit.Add(diff)
			c.After = line.Credit
		}
		result.Corrections = append(result.Corrections, c)
	}
	return result
}

// largest returns the index of the line with the largest positive amount on
// side. Ties go to the first line.
func largest(lines []model.LedgerLine, g group, side Side) (int, bool) {
	best := -1
	var bestAmt decimal.Decimal
	for _, i := range g.indices {
		amt := lines[i].Debit
		if side == SideCredit {
			amt = lines[i].Credit
		}
		if !amt.IsPositive() {
			continue
		}
		if best < 0 || amt.GreaterThan(bestAmt) {
			best, bestAmt = i, amt
		}
	}
	return best, best >= 0
}

// SortLines orders lines by journal code then entry id. Lines of the same
// entry keep their relative order.
func SortLines(lines []model.LedgerLine) {
	slices.SortStableFunc(lines, func(a, b model.LedgerLine) int {
		return cmp.Or(
			cmp.Compare(a.JournalCode, b.JournalCode),
			cmp.Compare(a.EntryID, b.EntryID),
		)
	})
}
