package fec

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fecgen/internal/id"
	"github.com/cleared-dev/fecgen/internal/model"
)

// Columns is the FEC header, in file order.
var Columns = []string{
	"JournalCode", "JournalLib", "EcritureNum", "EcritureDate",
	"CompteNum", "CompteLib", "CompAuxNum", "CompAuxLib",
	"PieceRef", "PieceDate", "EcritureLib", "Debit", "Credit",
	"EcritureLet", "DateLet", "ValidDate", "Montantdevise", "Idevise",
}

const (
	numFields      = 18
	dateFormat     = "20060102"
	colJournalCode = 0
	colJournalLib  = 1
	colEcrNum      = 2
	colEcrDate     = 3
	colCompteNum   = 4
	colCompteLib   = 5
	colAuxNum      = 6
	colAuxLib      = 7
	colPieceRef    = 8
	colPieceDate   = 9
	colEcrLib      = 10
	colDebit       = 11
	colCredit      = 12
	colLet         = 13
	colDateLet     = 14
	colValidDate   = 15
	colMontant     = 16
	colIdevise     = 17
)

// AmountFormat renders an amount for a given output target.
type AmountFormat func(decimal.Decimal) any

// TextAmount renders "1234,50": two decimals, comma separator.
func TextAmount(d decimal.Decimal) any {
	return FormatAmount(d)
}

// NumericAmount keeps the amount as a number for spreadsheet cells.
func NumericAmount(d decimal.Decimal) any {
	return d.InexactFloat64()
}

// FormatAmount formats an amount with two decimals and a comma separator.
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixedBank(2), ".", ",", 1)
}

// ParseAmount parses an amount written with either a comma or a dot
// separator. An empty string is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// Record maps a line to its FEC row. Only the two amount columns depend on
// the output target; every other column is a string.
func Record(line model.LedgerLine, amount AmountFormat) []any {
	row := make([]any, numFields)
	row[colJournalCode] = line.JournalCode
	row[colJournalLib] = line.JournalLib
	row[colEcrNum] = id.EcritureNum(line.JournalCode, line.EntryID)
	row[colEcrDate] = formatDate(line.EntryDate)
	row[colCompteNum] = line.AccountNum
	row[colCompteLib] = line.AccountLib
	row[colAuxNum] = line.AuxNum
	row[colAuxLib] = line.AuxLib
	row[colPieceRef] = line.PieceRef
	row[colPieceDate] = formatDate(line.PieceDate)
	row[colEcrLib] = line.Label
	row[colDebit] = amount(line.Debit)
	row[colCredit] = amount(line.Credit)
	row[colLet] = line.LetteringCode
	row[colDateLet] = formatDate(line.LetteringDate)
	row[colValidDate] = formatDate(line.ValidDate)
	row[colMontant] = ""
	row[colIdevise] = ""
	return row
}

// UnmarshalLine converts a FEC row (as strings) to a line.
func UnmarshalLine(record []string) (model.LedgerLine, error) {
	if len(record) != numFields {
		return model.LedgerLine{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	journal, entryID, err := id.ParseEcritureNum(record[colEcrNum])
	if err != nil {
		return model.LedgerLine{}, err
	}
	if journal != record[colJournalCode] {
		return model.LedgerLine{}, fmt.Errorf("entry number %q does not belong to journal %q", record[colEcrNum], record[colJournalCode])
	}

	var line model.LedgerLine
	line.JournalCode = record[colJournalCode]
	line.JournalLib = record[colJournalLib]
	line.EntryID = entryID
	line.AccountNum = record[colCompteNum]
	line.AccountLib = record[colCompteLib]
	line.AuxNum = record[colAuxNum]
	line.AuxLib = record[colAuxLib]
	line.PieceRef = record[colPieceRef]
	line.Label = record[colEcrLib]
	line.LetteringCode = record[colLet]

	dates := []struct {
		col int
		dst *time.Time
	}{
		{colEcrDate, &line.EntryDate},
		{colPieceDate, &line.PieceDate},
		{colDateLet, &line.LetteringDate},
		{colValidDate, &line.ValidDate},
	}
	for _, d := range dates {
		if *d.dst, err = parseDate(record[d.col]); err != nil {
			return model.LedgerLine{}, fmt.Errorf("%s: %w", Columns[d.col], err)
		}
	}
	line.TransactionTime = line.EntryDate

	if line.Debit, err = ParseAmount(record[colDebit]); err != nil {
		return model.LedgerLine{}, fmt.Errorf("%s: %w", Columns[colDebit], err)
	}
	if line.Credit, err = ParseAmount(record[colCredit]); err != nil {
		return model.LedgerLine{}, fmt.Errorf("%s: %w", Columns[colCredit], err)
	}
	return line, nil
}
