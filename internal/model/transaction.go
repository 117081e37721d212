package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the canonical serialized form of a transaction date.
const DateFormat = "2006-01-02"

// Transaction is the canonical shape every statement import converges to.
type Transaction struct {
	Description string
	Date        time.Time
	Amount      decimal.Decimal // negative = expense, positive = income
	AccountName string
	Category    string // empty until categorized
}

// DateString returns the date as YYYY-MM-DD.
func (t Transaction) DateString() string {
	return t.Date.Format(DateFormat)
}

// IsExpense reports whether the transaction moves money out of the account.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}
