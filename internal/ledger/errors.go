package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeOpeningBalance is returned when an account is opened with a negative balance.
	ErrNegativeOpeningBalance = errors.New("opening balance is negative")

	// ErrBelowMinimumBalance is returned when an opening balance is under the tier minimum.
	ErrBelowMinimumBalance = errors.New("opening balance is below the minimum balance")

	// ErrNegativeDeposit is returned for deposits of a negative amount.
	ErrNegativeDeposit = errors.New("deposit amount is negative")

	// ErrNegativeWithdrawal is returned for withdrawals of a negative amount.
	ErrNegativeWithdrawal = errors.New("withdrawal amount is negative")

	// ErrUnsupported is returned when a tier does not offer an operation.
	ErrUnsupported = errors.New("operation not supported")

	ErrUnknownTier   = errors.New("unknown tier")
	ErrInvalidPolicy = errors.New("invalid policy")
)

// OpenError describes a rejected account opening.
type OpenError struct {
	ID      string
	Tier    Tier
	Balance decimal.Decimal
	Minimum decimal.Decimal
	Err     error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s account %s with $%s (minimum $%s): %v",
		e.Tier, e.ID, e.Balance.StringFixed(2), e.Minimum.StringFixed(2), e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
