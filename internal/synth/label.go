package synth

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cleared-dev/fecgen/internal/model"
)

var labelSuppliers = []string{
	"DALKIA FRANCE",
	"TELECOM SAS",
	"FOURNITURES BUREAU",
	"PAPETERIE EXPRESS",
	"ELECTRICITE DE FRANCE",
}

var labelClients = []string{
	"CLIENT ALPHA",
	"CLIENT BETA",
	"CLIENT GAMMA",
	"CLIENT DELTA",
	"CLIENT EPSILON",
}

// Label builds the entry label shared by both lines of an entry. The
// template depends on the journal and, for the bank journal, on the class
// of the debit account.
func Label(rng *rand.Rand, journalCode string, debit model.Account, date time.Time) string {
	switch journalCode {
	case model.JournalPurchases:
		return fmt.Sprintf("FACT %s %s", date.Format("060102"), pick(rng, labelSuppliers))
	case model.JournalSales:
		return fmt.Sprintf("FACT CLIENT %s %06d", pick(rng, labelClients), 100000+rng.IntN(900000))
	case model.JournalBank:
		switch debit.Class() {
		case model.ClassExpense:
			return fmt.Sprintf("CB %s FOURNISSEUR", date.Format("02/01"))
		case model.ClassFinancial:
			return fmt.Sprintf("VIREMENT %s REF %08d", date.Format("02/01"), 10000000+rng.IntN(90000000))
		default:
			return fmt.Sprintf("OPERATION BANCAIRE %s", date.Format("02/01"))
		}
	case model.JournalGeneral:
		return fmt.Sprintf("ECRITURE DE REGULARISATION %s", date.Format("01/2006"))
	default:
		return fmt.Sprintf("OPERATION DIVERSE %s", date.Format("02/01/2006"))
	}
}

// PieceRef builds a source-document reference: journal code, two-digit
// month and a random 4-digit suffix. "AC031234"
func PieceRef(rng *rand.Rand, journalCode string, date time.Time) string {
	return fmt.Sprintf("%s%02d%d", journalCode, int(date.Month()), 1000+rng.IntN(9000))
}

// Lettering returns a reconciliation code and date for supplier and customer
// control accounts, one time in five. Other accounts are never lettered.
func Lettering(rng *rand.Rand, acct model.Account, end time.Time) (string, time.Time) {
	if acct.Prefix() != "401" && acct.Prefix() != "411" {
		return "", time.Time{}
	}
	if rng.Float64() >= letteringRate {
		return "", time.Time{}
	}
	code := fmt.Sprintf("%c%d", 'A'+rune(rng.IntN(26)), 1+rng.IntN(9))
	return code, Day(end).AddDate(0, 0, -rng.IntN(31))
}

const letteringRate = 0.2

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
