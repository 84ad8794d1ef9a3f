package synth

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fecgen/internal/model"
)

// amountRange is a half-open [Min, Max) interval in euros.
type amountRange struct {
	Min, Max float64
}

var (
	controlRange    = amountRange{100, 10000}
	operatingRange  = amountRange{10, 2000}
	fixedAssetRange = amountRange{500, 20000}
	defaultRange    = amountRange{10, 1000}
)

// controlAccounts carry the largest flows.
var controlAccounts = map[string]bool{
	"401000": true,
	"411000": true,
	"512000": true,
}

func rangeFor(acct model.Account) amountRange {
	if controlAccounts[acct.Num] {
		return controlRange
	}
	switch acct.Class() {
	case model.ClassExpense, model.ClassRevenue:
		return operatingRange
	case model.ClassFixedAsset:
		return fixedAssetRange
	default:
		return defaultRange
	}
}

// Amount draws a realistic amount for an account, rounded half-to-even to
// the cent.
func Amount(rng *rand.Rand, acct model.Account) decimal.Decimal {
	r := rangeFor(acct)
	v := r.Min + rng.Float64()*(r.Max-r.Min)
	return decimal.NewFromFloat(v).RoundBank(2)
}
