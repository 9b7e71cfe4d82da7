package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status is the outcome of a deposit or withdrawal.
type Status string

const (
	StatusOK       Status = "ok"
	StatusDeclined Status = "declined"
)

// Reason explains a decline.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonBelowMinimum     Reason = "below_minimum"
	ReasonOverdraftLimit   Reason = "overdraft_limit"
	ReasonTransactionLimit Reason = "transaction_limit"
	ReasonFrozen           Reason = "frozen"
)

// Result reports what a deposit or withdrawal did. A declined Result leaves
// the account untouched and Balance holds the unchanged balance.
type Result struct {
	Status  Status
	Reason  Reason
	Amount  decimal.Decimal
	Fee     decimal.Decimal // charged, or that would have been charged
	Balance decimal.Decimal
	Floor   decimal.Decimal
	// Shortfall is how far the balance is, or would have been, below Floor.
	Shortfall decimal.Decimal
	Froze     bool
	Unfroze   bool
	Counted   bool // counted against the monthly transaction cap
}

// OK reports whether the operation was committed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Declined reports whether the operation was refused.
func (r Result) Declined() bool {
	return r.Status == StatusDeclined
}

func (r Result) String() string {
	switch r.Reason {
	case ReasonBelowMinimum, ReasonOverdraftLimit:
		return fmt.Sprintf("declined: cannot go below %s; with a fee of %s the withdrawal is %s but the balance is %s",
			dollars(r.Floor), dollars(r.Fee), dollars(r.Amount.Add(r.Fee)), dollars(r.Balance))
	case ReasonTransactionLimit:
		return fmt.Sprintf("declined: monthly transaction limit reached; balance is %s", dollars(r.Balance))
	case ReasonFrozen:
		return fmt.Sprintf("declined: account is frozen below its minimum balance of %s; deposit at least %s",
			dollars(r.Floor), dollars(r.Shortfall))
	}

	s := fmt.Sprintf("ok: balance %s", dollars(r.Balance))
	if !r.Fee.IsZero() {
		s += fmt.Sprintf(", fee %s", dollars(r.Fee))
	}
	switch {
	case r.Froze:
		s += fmt.Sprintf("; account frozen, deposit at least %s to unfreeze", dollars(r.Shortfall))
	case r.Unfroze:
		s += "; account unfrozen"
	}
	return s
}

func dollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
