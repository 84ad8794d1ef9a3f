package id

import (
	"fmt"
	"strconv"
)

// EcritureNum returns an entry number like "AC00042" (journal code followed
// by the zero-padded 5-digit entry id).
func EcritureNum(journalCode string, entryID int) string {
	return fmt.Sprintf("%s%05d", journalCode, entryID)
}

// ParseEcritureNum parses "AC00042" into its journal code and entry id.
// The journal code is every leading non-digit character.
func ParseEcritureNum(num string) (journalCode string, entryID int, err error) {
	i := 0
	for i < len(num) && (num[i] < '0' || num[i] > '9') {
		i++
	}
	if i == 0 || i == len(num) {
		return "", 0, fmt.Errorf("invalid entry number format: %q", num)
	}

	entryID, err = strconv.Atoi(num[i:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in entry number %q: %w", num, err)
	}
	if entryID < 1 {
		return "", 0, fmt.Errorf("invalid sequence in entry number %q: must be positive", num)
	}
	return num[:i], entryID, nil
}
