// Package ledger implements the account rules engine: opening accounts,
// deposits and withdrawals, and the per-tier fee, floor and limit policies.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tierbank/internal/model"
)

// OverviewDateFormat is the layout used for the opening date in overviews.
const OverviewDateFormat = "2006-01-02 15:04:05 -0700"

// Account is a single ledger account. Its tier selects which rules Deposit,
// Withdraw and the tier-specific operations apply.
type Account struct {
	id       string
	tier     Tier
	policy   Policy
	balance  decimal.Decimal
	opened   time.Time
	owner    model.Owner
	active   bool
	counters Counters
}

// OpenParams holds parameters for opening an account.
type OpenParams struct {
	ID      string
	Tier    Tier
	Balance decimal.Decimal
	Opened  time.Time
	Owner   model.Owner
}

// Open validates the opening balance against policy and returns the new
// account. Opening a checking or money-market account starts a fresh cycle on
// the counter that tier uses.
func Open(params OpenParams, policy Policy, counters Counters) (*Account, error) {
	if err := validatePolicy(params.Tier, policy); err != nil {
		return nil, err
	}

	openErr := func(err error) error {
		return &OpenError{
			ID:      params.ID,
			Tier:    params.Tier,
			Balance: params.Balance,
			Minimum: policy.MinimumBalance,
			Err:     err,
		}
	}
	if params.Balance.IsNegative() {
		return nil, openErr(ErrNegativeOpeningBalance)
	}
	if params.Balance.LessThan(policy.MinimumBalance) {
		return nil, openErr(ErrBelowMinimumBalance)
	}

	if counters.Checks == nil {
		counters.Checks = &Counter{}
	}
	if counters.Transactions == nil {
		counters.Transactions = &Counter{}
	}
	switch params.Tier {
	case TierChecking:
		counters.Checks.reset()
	case TierMoneyMarket:
		counters.Transactions.reset()
	}

	return &Account{
		id:       params.ID,
		tier:     params.Tier,
		policy:   policy,
		balance:  params.Balance,
		opened:   params.Opened,
		owner:    params.Owner,
		active:   true,
		counters: counters,
	}, nil
}

func (a *Account) ID() string                      { return a.id }
func (a *Account) Tier() Tier                      { return a.tier }
func (a *Account) Policy() Policy                  { return a.policy }
func (a *Account) Balance() decimal.Decimal        { return a.balance }
func (a *Account) MinimumBalance() decimal.Decimal { return a.policy.MinimumBalance }
func (a *Account) WithdrawalFee() decimal.Decimal  { return a.policy.WithdrawalFee }
func (a *Account) Opened() time.Time               { return a.opened }
func (a *Account) Owner() model.Owner              { return a.owner }

// Active reports whether the account accepts withdrawals. Only money-market
// accounts are ever frozen.
func (a *Account) Active() bool { return a.active }

// TransactionCount returns the transactions counted in the current cycle.
func (a *Account) TransactionCount() int { return a.counters.Transactions.Value() }

// ChecksUsed returns the checks written in the current cycle.
func (a *Account) ChecksUsed() int { return a.counters.Checks.Value() }

// Deposit credits amount. Negative amounts are an error; money-market
// accounts may decline once the transaction cap is reached.
func (a *Account) Deposit(amount decimal.Decimal) (Result, error) {
	if amount.IsNegative() {
		return Result{}, fmt.Errorf("deposit %s to account %s: %w", amount, a.id, ErrNegativeDeposit)
	}
	if a.tier == TierMoneyMarket {
		return a.depositMoneyMarket(amount), nil
	}

	a.balance = a.balance.Add(amount)
	return Result{
		Status:  StatusOK,
		Amount:  amount,
		Balance: a.balance,
		Floor:   a.policy.MinimumBalance,
	}, nil
}

// Withdraw debits amount plus the withdrawal fee, declining when the balance
// would drop below the minimum balance.
func (a *Account) Withdraw(amount decimal.Decimal) (Result, error) {
	if amount.IsNegative() {
		return Result{}, fmt.Errorf("withdraw %s from account %s: %w", amount, a.id, ErrNegativeWithdrawal)
	}
	if a.tier == TierMoneyMarket {
		return a.withdrawMoneyMarket(amount), nil
	}
	return a.withdrawAbove(amount, a.policy.WithdrawalFee, a.policy.MinimumBalance, ReasonBelowMinimum), nil
}

// withdrawAbove debits amount and fee unless the balance would fall below floor.
func (a *Account) withdrawAbove(amount, fee, floor decimal.Decimal, reason Reason) Result {
	projected := a.balance.Sub(amount).Sub(fee)
	if projected.LessThan(floor) {
		return a.decline(reason, amount, fee, floor, floor.Sub(projected))
	}

	a.balance = projected
	return Result{
		Status:  StatusOK,
		Amount:  amount,
		Fee:     fee,
		Balance: a.balance,
		Floor:   floor,
	}
}

func (a *Account) decline(reason Reason, amount, fee, floor, shortfall decimal.Decimal) Result {
	return Result{
		Status:    StatusDeclined,
		Reason:    reason,
		Amount:    amount,
		Fee:       fee,
		Balance:   a.balance,
		Floor:     floor,
		Shortfall: shortfall,
	}
}

func (a *Account) unsupported(op string) error {
	return fmt.Errorf("%s on %s account %s: %w", op, a.tier, a.id, ErrUnsupported)
}

// Overview is a read-only summary of an account for display.
type Overview struct {
	ID      string
	Tier    Tier
	Owner   string
	Opened  time.Time
	Balance string // rounded to cents
	Active  bool
}

// Overview returns a summary of the account's current state.
func (a *Account) Overview() Overview {
	return Overview{
		ID:      a.id,
		Tier:    a.tier,
		Owner:   a.owner.Name(),
		Opened:  a.opened,
		Balance: a.balance.StringFixed(2),
		Active:  a.active,
	}
}

func (o Overview) String() string {
	return fmt.Sprintf("Account #%s has belonged to %s since %s and has a balance of $%s.",
		o.ID, o.Owner, o.Opened.Format(OverviewDateFormat), o.Balance)
}
