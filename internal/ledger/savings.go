package ledger

import "github.com/shopspring/decimal"

// AddInterest credits balance * ratePercent / 100 and returns the amount
// credited. The rate is a percentage, so 0.25 means 0.25%. Only
// interest-bearing tiers (savings, money market) support it.
func (a *Account) AddInterest(ratePercent decimal.Decimal) (decimal.Decimal, error) {
	if !a.policy.Interest {
		return decimal.Zero, a.unsupported("add interest")
	}
	interest := a.balance.Mul(ratePercent).Shift(-2)
	a.balance = a.balance.Add(interest)
	return interest, nil
}
