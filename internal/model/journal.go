package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal codes of the default journal set.
const (
	JournalPurchases = "AC"
	JournalSales     = "VE"
	JournalBank      = "BQ"
	JournalCash      = "CA"
	JournalGeneral   = "OD"
)

// Journal is a category of transactions.
type Journal struct {
	Code string
	Lib  string
}

// LedgerLine is one row of a FEC file (one side of a double-entry).
type LedgerLine struct {
	JournalCode string
	JournalLib  string
	EntryID     int // sequential per journal, 1-based

	// TransactionTime is the in-memory timestamp of the operation. Its hour
	// is only ever non-zero after an after-hours anomaly.
	TransactionTime time.Time
	EntryDate       time.Time

	PieceRef  string
	PieceDate time.Time

	AccountNum string
	AccountLib string
	AuxNum     string
	AuxLib     string

	Label  string
	Debit  decimal.Decimal // zero if credit side
	Credit decimal.Decimal // zero if debit side

	LetteringCode string
	LetteringDate time.Time // zero when unlettered
	ValidDate     time.Time
}

// EntryKey identifies an entry: all lines sharing a journal code and entry id.
type EntryKey struct {
	JournalCode string
	EntryID     int
}

// Key returns the entry the line belongs to.
func (l LedgerLine) Key() EntryKey {
	return EntryKey{JournalCode: l.JournalCode, EntryID: l.EntryID}
}

// IsDebit reports whether the line carries a debit amount.
func (l LedgerLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// Amount returns the active side of the line.
func (l LedgerLine) Amount() decimal.Decimal {
	if !l.Debit.IsZero() {
		return l.Debit
	}
	return l.Credit
}

// IsLettered reports whether the line carries a lettering code.
func (l LedgerLine) IsLettered() bool {
	return l.LetteringCode != ""
}
