package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tierbank/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func open(t *testing.T, tier Tier, balance string) *Account {
	t.Helper()
	acct, err := Open(OpenParams{
		ID:      "1212",
		Tier:    tier,
		Balance: dec(balance),
		Opened:  time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC),
		Owner:   model.Owner{ID: "14", FirstName: "Ada", LastName: "Lovelace"},
	}, DefaultPolicy(tier), NewCounters())
	require.NoError(t, err)
	return acct
}

func requireBalance(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, dec(want).Equal(got), "balance: want %s, got %s", want, got)
}

func TestOpen_OpeningBalances(t *testing.T) {
	tests := []struct {
		tier    Tier
		balance string
		wantErr error
	}{
		{TierAccount, "-1", ErrNegativeOpeningBalance},
		{TierAccount, "0", nil},
		{TierSavings, "5", ErrBelowMinimumBalance},
		{TierSavings, "10", nil},
		{TierSavings, "-3", ErrNegativeOpeningBalance},
		{TierChecking, "0", nil},
		{TierMoneyMarket, "9999.99", ErrBelowMinimumBalance},
		{TierMoneyMarket, "10000", nil},
	}
	for _, tt := range tests {
		_, err := Open(OpenParams{ID: "1", Tier: tt.tier, Balance: dec(tt.balance)}, DefaultPolicy(tt.tier), NewCounters())
		if tt.wantErr == nil {
			assert.NoError(t, err, "%s with %s", tt.tier, tt.balance)
			continue
		}
		require.Error(t, err, "%s with %s", tt.tier, tt.balance)
		assert.ErrorIs(t, err, tt.wantErr)

		var openErr *OpenError
		require.True(t, errors.As(err, &openErr))
		assert.Equal(t, tt.tier, openErr.Tier)
		assert.True(t, openErr.Balance.Equal(dec(tt.balance)))
	}
}

func TestOpen_InvalidPolicy(t *testing.T) {
	_, err := Open(OpenParams{ID: "1", Tier: TierChecking, Balance: dec("10")}, DefaultPolicy(TierAccount), NewCounters())
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = Open(OpenParams{ID: "1", Tier: TierMoneyMarket, Balance: dec("10000")}, DefaultPolicy(TierSavings), NewCounters())
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = Open(OpenParams{ID: "1", Tier: Tier("gold"), Balance: dec("10")}, Policy{}, NewCounters())
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestOpen_NilCounters(t *testing.T) {
	acct, err := Open(OpenParams{ID: "1", Tier: TierChecking, Balance: dec("10")}, DefaultPolicy(TierChecking), Counters{})
	require.NoError(t, err)
	assert.Equal(t, 0, acct.ChecksUsed())
	assert.Equal(t, 0, acct.TransactionCount())
}

func TestDepositWithdraw_Account(t *testing.T) {
	acct := open(t, TierAccount, "100")

	res, err := acct.Deposit(dec("100.50"))
	require.NoError(t, err)
	assert.True(t, res.OK())
	requireBalance(t, "200.50", res.Balance)

	res, err = acct.Withdraw(dec("50"))
	require.NoError(t, err)
	assert.True(t, res.OK())
	requireBalance(t, "150.50", acct.Balance())
}

func TestWithdraw_DeclineLeavesBalance(t *testing.T) {
	acct := open(t, TierAccount, "150.50")

	res, err := acct.Withdraw(dec("151"))
	require.NoError(t, err, "a decline is not an error")
	assert.True(t, res.Declined())
	assert.Equal(t, ReasonBelowMinimum, res.Reason)
	requireBalance(t, "150.50", res.Balance)
	requireBalance(t, "150.50", acct.Balance())
	assert.True(t, res.Shortfall.Equal(dec("0.50")))
}

func TestWithdraw_ToExactlyMinimum(t *testing.T) {
	acct := open(t, TierAccount, "0")
	for range 10 {
		_, err := acct.Deposit(dec("0.1"))
		require.NoError(t, err)
	}
	requireBalance(t, "1", acct.Balance())

	res, err := acct.Withdraw(dec("1"))
	require.NoError(t, err)
	assert.True(t, res.OK(), "no rounding drift at the floor")
	assert.True(t, acct.Balance().IsZero())
}

func TestDeposit_Negative(t *testing.T) {
	for _, tier := range Tiers() {
		balance := DefaultPolicy(tier).MinimumBalance.String()
		acct := open(t, tier, balance)

		_, err := acct.Deposit(dec("-1"))
		assert.ErrorIs(t, err, ErrNegativeDeposit, "tier %s", tier)
		requireBalance(t, balance, acct.Balance())
	}
}

func TestWithdraw_Negative(t *testing.T) {
	acct := open(t, TierAccount, "10")
	_, err := acct.Withdraw(dec("-5"))
	assert.ErrorIs(t, err, ErrNegativeWithdrawal)
	requireBalance(t, "10", acct.Balance())
}

func TestDepositThenWithdraw_CostsOnlyTheFee(t *testing.T) {
	tests := []struct {
		tier    Tier
		balance string
		amount  string
		want    string
	}{
		{TierAccount, "100", "40", "100"},
		{TierSavings, "100", "50", "98"},
		{TierChecking, "100", "25", "99"},
		{TierMoneyMarket, "20000", "5000", "20000"},
	}
	for _, tt := range tests {
		acct := open(t, tt.tier, tt.balance)

		res, err := acct.Deposit(dec(tt.amount))
		require.NoError(t, err)
		require.True(t, res.OK())

		res, err = acct.Withdraw(dec(tt.amount))
		require.NoError(t, err)
		require.True(t, res.OK())
		requireBalance(t, tt.want, acct.Balance())
	}
}

func TestOverview(t *testing.T) {
	acct := open(t, TierAccount, "100")
	_, err := acct.Deposit(dec("0.005"))
	require.NoError(t, err)

	ov := acct.Overview()
	assert.Equal(t, "1212", ov.ID)
	assert.Equal(t, "Ada Lovelace", ov.Owner)
	assert.Equal(t, "100.01", ov.Balance)
	assert.True(t, ov.Active)
	assert.Equal(t,
		"Account #1212 has belonged to Ada Lovelace since 1999-12-31 23:59:59 +0000 and has a balance of $100.01.",
		ov.String())
}

func TestOwnerIsCopied(t *testing.T) {
	owner := model.Owner{ID: "7", FirstName: "Grace", LastName: "Hopper"}
	acct, err := Open(OpenParams{ID: "1", Tier: TierAccount, Balance: dec("1"), Owner: owner}, DefaultPolicy(TierAccount), NewCounters())
	require.NoError(t, err)

	owner.FirstName = "Changed"
	assert.Equal(t, "Grace", acct.Owner().FirstName)
}

func TestUnsupportedOperations(t *testing.T) {
	acct := open(t, TierAccount, "100")

	_, err := acct.AddInterest(dec("1"))
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = acct.WithdrawUsingCheck(dec("1"))
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, acct.ResetChecks(), ErrUnsupported)
	assert.ErrorIs(t, acct.ResetTransactions(), ErrUnsupported)
	requireBalance(t, "100", acct.Balance())
}
