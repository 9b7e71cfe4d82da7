package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WithdrawUsingCheck debits amount against the overdraft floor rather than the
// minimum balance. The first FreeChecks checks in a cycle carry no fee; later
// ones cost the check fee. Only successful checks are counted.
func (a *Account) WithdrawUsingCheck(amount decimal.Decimal) (Result, error) {
	if a.tier != TierChecking {
		return Result{}, a.unsupported("withdraw using check")
	}
	if amount.IsNegative() {
		return Result{}, fmt.Errorf("check for %s on account %s: %w", amount, a.id, ErrNegativeWithdrawal)
	}

	rules := a.policy.Checks
	fee := decimal.Zero
	if a.counters.Checks.Value() >= rules.FreeChecks {
		fee = rules.Fee
	}

	res := a.withdrawAbove(amount, fee, rules.Floor, ReasonOverdraftLimit)
	if res.OK() {
		a.counters.Checks.inc()
	}
	return res, nil
}

// ResetChecks starts a new free-check cycle.
func (a *Account) ResetChecks() error {
	if a.tier != TierChecking {
		return a.unsupported("reset checks")
	}
	a.counters.Checks.reset()
	return nil
}
