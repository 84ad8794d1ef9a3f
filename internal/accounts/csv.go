package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/fecgen/internal/model"
)

// Header is the CSV header for a chart of accounts file.
var Header = []string{"account_num", "account_lib"}

const (
	numFields = 2
	colNum    = 0
	colLib    = 1
)

// ReadAccounts reads a chart of accounts CSV. Labels are folded to ASCII.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if seen[acct.Num] {
			return nil, fmt.Errorf("row %d: duplicate account %s", i+2, acct.Num)
		}
		seen[acct.Num] = true
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes a chart of accounts CSV.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colNum] = acct.Num
	row[colLib] = acct.Lib
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	num := record[colNum]
	if len(num) != 6 {
		return model.Account{}, fmt.Errorf("account number %q must have 6 digits", num)
	}
	for _, c := range num {
		if c < '0' || c > '9' {
			return model.Account{}, fmt.Errorf("account number %q must have 6 digits", num)
		}
	}

	return model.Account{
		Num: num,
		Lib: Sanitize(record[colLib]),
	}, nil
}
