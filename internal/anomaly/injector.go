package anomaly

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fecgen/internal/accounts"
	"github.com/cleared-dev/fecgen/internal/model"
)

// Approval ceilings that threshold_amount stays just under.
var thresholds = []int64{1000, 5000, 10000}

// Applied records one anomaly applied to a line. Changed is false when the
// pattern did not apply to that line (duplicate_ref on the first line,
// unusual_account_usage on a non-treasury account).
type Applied struct {
	Index   int
	Kind    Kind
	Changed bool
}

// Report summarizes an injection pass.
type Report struct {
	Applied []Applied
}

// Count returns the number of selected lines.
func (r Report) Count() int {
	return len(r.Applied)
}

// ByKind counts selected lines per pattern.
func (r Report) ByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, a := range r.Applied {
		counts[a.Kind]++
	}
	return counts
}

// Injector applies anomaly patterns to ledger lines.
type Injector struct {
	rng   *rand.Rand
	kinds []Kind
}

// NewInjector creates an Injector drawing from rng. With no kinds every
// pattern is eligible.
func NewInjector(rng *rand.Rand, kinds ...Kind) *Injector {
	if len(kinds) == 0 {
		kinds = AllKinds()
	}
	return &Injector{rng: rng, kinds: kinds}
}

// SampleSize returns floor(n x rate), bounded to [0, n].
func SampleSize(n int, rate float64) int {
	if n <= 0 || rate <= 0 {
		return 0
	}
	k := int(math.Floor(float64(n) * rate))
	return min(k, n)
}

// Inject selects floor(len(lines) x rate) distinct lines uniformly at random
// and applies one randomly chosen pattern to each, in place. Entries are not
// rebalanced.
func (in *Injector) Inject(lines []model.LedgerLine, rate float64) Report {
	k := SampleSize(len(lines), rate)
	if k == 0 {
		return Report{}
	}

	indices := in.rng.Perm(len(lines))[:k]
	applied := make([]Applied, 0, k)
	for _, idx := range indices {
		kind := in.kinds[in.rng.IntN(len(in.kinds))]
		applied = append(applied, Applied{
			Index:   idx,
			Kind:    kind,
			Changed: in.Apply(lines, idx, kind),
		})
	}
	return Report{Applied: applied}
}

// Apply mutates lines[idx] according to kind and reports whether the line
// changed in a way the pattern intends.
func (in *Injector) Apply(lines []model.LedgerLine, idx int, kind Kind) bool {
	line := &lines[idx]
	switch kind {
	case RoundAmount:
		return roundAmount(line)
	case UnusualDate:
		return in.unusualDate(line)
	case DuplicateRef:
		if idx == 0 {
			return false
		}
		line.PieceRef = lines[idx-1].PieceRef
		return true
	case UnusualAccountUsage:
		return in.unusualAccount(line)
	case ThresholdAmount:
		in.thresholdAmount(line, thresholds[in.rng.IntN(len(thresholds))])
		return true
	case WeekendTransaction:
		weekendTransaction(line)
		return true
	default:
		return false
	}
}

// roundAmount rounds both sides to whole euros.
func roundAmount(line *model.LedgerLine) bool {
	debit, credit := line.Debit.RoundBank(0), line.Credit.RoundBank(0)
	changed := !debit.Equal(line.Debit) || !credit.Equal(line.Credit)
	line.Debit, line.Credit = debit, credit
	return changed
}

// unusualDate moves the operation after office hours (20:00-23:00). The
// calendar date is unchanged.
func (in *Injector) unusualDate(line *model.LedgerLine) bool {
	t := line.TransactionTime
	hour := 20 + in.rng.IntN(4)
	line.TransactionTime = time.Date(t.Year(), t.Month(), t.Day(), hour, t.Minute(), t.Second(), 0, t.Location())
	return true
}

// unusualAccount reassigns a treasury line to a suspense account.
func (in *Injector) unusualAccount(line *model.LedgerLine) bool {
	if model.ClassOf(line.AccountNum) != model.ClassFinancial {
		return false
	}
	acct := accounts.SuspenseAccount
	if in.rng.IntN(2) == 1 {
		acct = accounts.PrepaidExpensesAccount
	}
	line.AccountNum = acct.Num
	line.AccountLib = acct.Lib
	return true
}

// thresholdAmount sets the active side to limit minus a random amount in
// [0.01, 1], rounded to the cent.
func (in *Injector) thresholdAmount(line *model.LedgerLine, limit int64) {
	under := 0.01 + in.rng.Float64()*0.99
	amount := decimal.NewFromInt(limit).Sub(decimal.NewFromFloat(under)).RoundBank(2)
	if line.Debit.IsPositive() {
		line.Debit = amount
	} else {
		line.Credit = amount
	}
}

// weekendTransaction moves the operation to the next Saturday, or Sunday
// when it is already a Saturday, and keeps the entry date in sync.
func weekendTransaction(line *model.LedgerLine) {
	t := line.TransactionTime
	days := (int(time.Saturday) - int(t.Weekday()) + 7) % 7
	if days == 0 {
		days = 1
	}
	line.TransactionTime = t.AddDate(0, 0, days)
	moved := line.TransactionTime
	line.EntryDate = time.Date(moved.Year(), moved.Month(), moved.Day(), 0, 0, 0, 0, moved.Location())
}
