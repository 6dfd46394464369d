package models

import "github.com/shopspring/decimal"

// Transaction event actions published to the event stream.
const (
	EventTransactionCreated = "created"
	EventTransactionUpdated = "updated"
	EventTransactionDeleted = "deleted"
)

// TransactionEvent is the payload published to the transaction event stream
// whenever a household transaction is created, updated or deleted.
type TransactionEvent struct {
	EventID   string          `json:"event_id"`   // EventID is a unique identifier for the event.
	Action    string          `json:"action"`     // Action is "created", "updated" or "deleted".
	HouseID   string          `json:"house_id"`   // HouseID is the household the transaction belongs to.
	TxID      string          `json:"tx_id"`      // TxID identifies the transaction.
	Type      string          `json:"type"`       // Type is INCOME or EXPENSE.
	Amount    decimal.Decimal `json:"amount"`     // Amount is the monetary value of the transaction.
	UserID    string          `json:"user_id"`    // UserID is the caller who performed the action.
	Timestamp int64           `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) of the action.
}
