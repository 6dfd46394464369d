package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction types
const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// ValidTransactionType reports whether t is INCOME or EXPENSE.
func ValidTransactionType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// TransactionDateLayout is the calendar-day format of a transaction date.
const TransactionDateLayout = "2006-01-02"

// Transaction is a dated INCOME or EXPENSE record of a household.
// CreatedByName and CreatedByAvatar are a snapshot of the creator's profile
// at creation time, so historical rows render correctly even if the profile
// later changes.
type Transaction struct {
	TxID            string          `json:"txId"`
	HouseID         string          `json:"houseId"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Note            string          `json:"note,omitempty"`
	Date            string          `json:"date"` // YYYY-MM-DD
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	CreatedByName   string          `json:"createdByName,omitempty"`
	CreatedByAvatar string          `json:"createdByAvatar,omitempty"`
}
