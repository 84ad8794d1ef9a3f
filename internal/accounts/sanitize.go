package accounts

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ligatures = strings.NewReplacer(
	"œ", "oe", "Œ", "OE",
	"æ", "ae", "Æ", "AE",
	"ß", "ss",
	"€", "EUR",
	"’", "'", "‘", "'",
	"«", "'", "»", "'", "\"", "'",
	"\u00a0", " ",
)

// Sanitize folds a label to plain ASCII: accents are stripped, common
// ligatures expanded, and any remaining non-ASCII rune dropped. Quotes become
// apostrophes so a pipe-delimited field never needs quoting.
// "Dépôts reçus" -> "Depots recus"
func Sanitize(s string) string {
	s = ligatures.Replace(s)
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
		norm.NFC,
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
