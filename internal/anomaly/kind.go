package anomaly

import (
	"fmt"
	"strings"
)

// Kind names an anomaly pattern.
type Kind string

const (
	RoundAmount         Kind = "round_amount"
	UnusualDate         Kind = "unusual_date"
	DuplicateRef        Kind = "duplicate_ref"
	UnusualAccountUsage Kind = "unusual_account_usage"
	ThresholdAmount     Kind = "threshold_amount"
	WeekendTransaction  Kind = "weekend_transaction"
)

// AllKinds returns the six patterns in their canonical order.
func AllKinds() []Kind {
	return []Kind{
		RoundAmount,
		UnusualDate,
		DuplicateRef,
		UnusualAccountUsage,
		ThresholdAmount,
		WeekendTransaction,
	}
}

// ParseKind parses a pattern name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllKinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown anomaly kind %q", s)
}

// ParseKinds parses a list of pattern names. An empty list yields nil,
// which the injector reads as every pattern.
func ParseKinds(names []string) ([]Kind, error) {
	var kinds []Kind
	seen := make(map[Kind]bool)
	for _, n := range names {
		k, err := ParseKind(n)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}
