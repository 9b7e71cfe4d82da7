package ledger

import "github.com/shopspring/decimal"

// withdrawMoneyMarket applies the money-market rules: a capped number of
// transactions per cycle, no withdrawals while frozen, and a penalty plus
// freeze for a withdrawal that takes the balance below the minimum.
func (a *Account) withdrawMoneyMarket(amount decimal.Decimal) Result {
	rules := a.policy.Transactions
	floor := a.policy.MinimumBalance

	if a.limitReached() {
		return a.decline(ReasonTransactionLimit, amount, decimal.Zero, floor, decimal.Zero)
	}
	if !a.active {
		return a.decline(ReasonFrozen, amount, decimal.Zero, floor, floor.Sub(a.balance))
	}

	res := Result{
		Status:  StatusOK,
		Amount:  amount,
		Fee:     a.policy.WithdrawalFee,
		Floor:   floor,
		Counted: true,
	}
	if a.balance.Sub(amount).Sub(res.Fee).LessThan(floor) {
		res.Fee = res.Fee.Add(rules.BelowMinimumFee)
		res.Froze = true
		a.active = false
	}

	a.balance = a.balance.Sub(amount).Sub(res.Fee)
	a.counters.Transactions.inc()

	res.Balance = a.balance
	if res.Froze {
		res.Shortfall = floor.Sub(a.balance)
	}
	return res
}

// depositMoneyMarket credits amount. A deposit that lifts a frozen account
// back to its minimum unfreezes it and is not counted against the cap.
func (a *Account) depositMoneyMarket(amount decimal.Decimal) Result {
	floor := a.policy.MinimumBalance
	restored := a.balance.Add(amount)

	if !a.active && restored.GreaterThanOrEqual(floor) {
		a.balance = restored
		a.active = true
		return Result{
			Status:  StatusOK,
			Amount:  amount,
			Balance: a.balance,
			Floor:   floor,
			Unfroze: true,
		}
	}

	if a.limitReached() {
		return a.decline(ReasonTransactionLimit, amount, decimal.Zero, floor, decimal.Zero)
	}

	a.balance = restored
	a.counters.Transactions.inc()
	res := Result{
		Status:  StatusOK,
		Amount:  amount,
		Balance: a.balance,
		Floor:   floor,
		Counted: true,
	}
	if !a.active {
		res.Shortfall = floor.Sub(a.balance)
	}
	return res
}

func (a *Account) limitReached() bool {
	return a.counters.Transactions.Value() >= a.policy.Transactions.Cap
}

// ResetTransactions starts a new monthly cycle and reactivates the account.
func (a *Account) ResetTransactions() error {
	if a.tier != TierMoneyMarket {
		return a.unsupported("reset transactions")
	}
	a.counters.Transactions.reset()
	a.active = true
	return nil
}
