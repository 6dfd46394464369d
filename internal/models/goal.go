package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is the single savings target of a household. Reading a household with
// no goal record yields a zero-value default rather than an error.
type Goal struct {
	HouseID     string          `json:"houseId"`
	SavingsGoal decimal.Decimal `json:"savingsGoal"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
	UpdatedBy   string          `json:"updatedBy,omitempty"`
}

// DefaultGoal is the goal of a household that never set one.
func DefaultGoal(houseID string) *Goal {
	return &Goal{HouseID: houseID, SavingsGoal: decimal.Zero}
}
