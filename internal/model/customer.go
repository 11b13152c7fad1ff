package model

import "time"

// Customer is a registered loyalty member. Identity is the externally
// supplied national ID number that doubles as the login token; Balance is
// the current points count and never goes negative.
type Customer struct {
	Identity  string    `json:"identity" db:"identity"`
	Name      string    `json:"name" db:"name"`
	Balance   int       `json:"balance" db:"balance"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
