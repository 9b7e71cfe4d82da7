package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tier identifies which rule set an account follows.
type Tier string

const (
	TierAccount     Tier = "account"
	TierSavings     Tier = "savings"
	TierChecking    Tier = "checking"
	TierMoneyMarket Tier = "money_market"
)

// Tiers returns every tier in display order.
func Tiers() []Tier {
	return []Tier{TierAccount, TierSavings, TierChecking, TierMoneyMarket}
}

// ParseTier converts a tier name to a Tier. An empty name is TierAccount.
func ParseTier(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "account", "basic":
		return TierAccount, nil
	case "savings":
		return TierSavings, nil
	case "checking":
		return TierChecking, nil
	case "money_market", "money-market", "moneymarket":
		return TierMoneyMarket, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, name)
}

// Policy parameterizes the rules an account is held to.
type Policy struct {
	MinimumBalance decimal.Decimal
	WithdrawalFee  decimal.Decimal
	Interest       bool
	Checks         *CheckRules       // checking only
	Transactions   *TransactionRules // money market only
}

// CheckRules governs withdrawals made by check.
type CheckRules struct {
	Floor      decimal.Decimal // overdraft floor, independent of MinimumBalance
	FreeChecks int
	Fee        decimal.Decimal
}

// TransactionRules governs the monthly transaction cap and the freeze penalty.
type TransactionRules struct {
	Cap             int
	BelowMinimumFee decimal.Decimal
}

// Policies maps tiers to the policy accounts of that tier are opened with.
type Policies map[Tier]Policy

// DefaultPolicy returns the standard policy for a tier.
func DefaultPolicy(t Tier) Policy {
	switch t {
	case TierSavings:
		return Policy{
			MinimumBalance: decimal.NewFromInt(10),
			WithdrawalFee:  decimal.NewFromInt(2),
			Interest:       true,
		}
	case TierChecking:
		return Policy{
			MinimumBalance: decimal.Zero,
			WithdrawalFee:  decimal.NewFromInt(1),
			Checks: &CheckRules{
				Floor:      decimal.NewFromInt(-10),
				FreeChecks: 3,
				Fee:        decimal.NewFromInt(2),
			},
		}
	case TierMoneyMarket:
		return Policy{
			MinimumBalance: decimal.NewFromInt(10000),
			WithdrawalFee:  decimal.Zero,
			Interest:       true,
			Transactions: &TransactionRules{
				Cap:             6,
				BelowMinimumFee: decimal.NewFromInt(100),
			},
		}
	default:
		return Policy{MinimumBalance: decimal.Zero, WithdrawalFee: decimal.Zero}
	}
}

// DefaultPolicies returns the standard policy for every tier.
func DefaultPolicies() Policies {
	p := make(Policies, len(Tiers()))
	for _, t := range Tiers() {
		p[t] = DefaultPolicy(t)
	}
	return p
}

// For returns the policy for t, falling back to DefaultPolicy.
func (p Policies) For(t Tier) Policy {
	if pol, ok := p[t]; ok {
		return pol
	}
	return DefaultPolicy(t)
}

func validatePolicy(t Tier, p Policy) error {
	switch t {
	case TierAccount, TierSavings:
	case TierChecking:
		if p.Checks == nil {
			return fmt.Errorf("%w: %s requires check rules", ErrInvalidPolicy, t)
		}
	case TierMoneyMarket:
		if p.Transactions == nil {
			return fmt.Errorf("%w: %s requires transaction rules", ErrInvalidPolicy, t)
		}
		if p.Transactions.Cap <= 0 {
			return fmt.Errorf("%w: transaction cap must be positive", ErrInvalidPolicy)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTier, string(t))
	}
	if p.WithdrawalFee.IsNegative() {
		return fmt.Errorf("%w: negative withdrawal fee", ErrInvalidPolicy)
	}
	return nil
}
