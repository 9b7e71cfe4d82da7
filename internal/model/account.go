package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Owner is the identity and contact record attached to an account.
type Owner struct {
	ID            string
	FirstName     string
	LastName      string
	StreetAddress string
	City          string
	State         string
	PostalCode    string // optional
}

// Name returns "First Last", skipping empty parts.
func (o Owner) Name() string {
	return strings.TrimSpace(strings.Join([]string{o.FirstName, o.LastName}, " "))
}

// AccountSeed represents a row in accounts.csv.
type AccountSeed struct {
	ID      string
	Balance decimal.Decimal // converted from cents
	Opened  time.Time
}

// OwnerLink represents a row in account_owners.csv.
type OwnerLink struct {
	AccountID string
	OwnerID   string
}
