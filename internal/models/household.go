package models

import "time"

// Household is a shared budget group. Ownership is expressed through
// membership records, not a field on the household itself.
type Household struct {
	HouseID   string    `json:"houseId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// UserHousehold is a household as seen by one of its members: the household
// plus the caller's role in it.
type UserHousehold struct {
	HouseID string `json:"houseId"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}
