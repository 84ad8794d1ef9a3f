package model

// AccountClass classifies accounts by the leading digit of their code,
// following the French chart of accounts (plan comptable general).
type AccountClass int

const (
	ClassUnknown    AccountClass = 0
	ClassCapital    AccountClass = 1
	ClassFixedAsset AccountClass = 2
	ClassInventory  AccountClass = 3
	ClassThirdParty AccountClass = 4
	ClassFinancial  AccountClass = 5
	ClassExpense    AccountClass = 6
	ClassRevenue    AccountClass = 7
)

var classNames = map[AccountClass]string{
	ClassUnknown:    "unknown",
	ClassCapital:    "capital",
	ClassFixedAsset: "fixed_asset",
	ClassInventory:  "inventory",
	ClassThirdParty: "third_party",
	ClassFinancial:  "financial",
	ClassExpense:    "expense",
	ClassRevenue:    "revenue",
}

func (c AccountClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return classNames[ClassUnknown]
}

// ClassOf derives the account class from an account code.
// "606100" -> ClassExpense
func ClassOf(code string) AccountClass {
	if code == "" {
		return ClassUnknown
	}
	d := code[0]
	if d < '1' || d > '7' {
		return ClassUnknown
	}
	return AccountClass(d - '0')
}

// Account represents a row in the chart of accounts.
type Account struct {
	Num string // 6 digits, leading zeros significant
	Lib string
}

// Class returns the account class derived from the account number.
func (a Account) Class() AccountClass {
	return ClassOf(a.Num)
}

// Prefix returns the 3-digit class prefix ("401" for "401000").
func (a Account) Prefix() string {
	return Prefix(a.Num)
}

// Prefix returns the first three characters of an account code, or the whole
// code when it is shorter.
func Prefix(code string) string {
	if len(code) < 3 {
		return code
	}
	return code[:3]
}

// AuxiliaryEntity is a sub-ledger account (a supplier or customer) attached
// to a third-party control account.
type AuxiliaryEntity struct {
	Code string // "F00001", "C00001"
	Name string
}
