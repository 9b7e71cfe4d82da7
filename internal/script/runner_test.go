package script

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tierbank/internal/ledger"
	"github.com/cleared-dev/tierbank/internal/logging"
	"github.com/cleared-dev/tierbank/internal/registry"
)

var fixedNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func newTestRunner() (*Runner, *registry.Registry) {
	reg := registry.New(nil, registry.WithLogger(logging.Discard()))
	r := NewRunner(reg, logging.Discard())
	r.now = func() time.Time { return fixedNow }
	return r, reg
}

func mustRead(t *testing.T, body string) []Operation {
	t.Helper()
	ops, err := ReadOperations(strings.NewReader(Header + "\n" + body))
	require.NoError(t, err)
	return ops
}

func TestRun_MoneyMarketScenario(t *testing.T) {
	r, reg := newTestRunner()
	ops := mustRead(t, `open,1,13000,money_market,
withdraw,1,5000,,
withdraw,1,5000,,
deposit,1,500000,,
interest,1,1,,
`)

	entries, err := r.Run(ops)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, "open", entries[0].Operation)
	assert.True(t, entries[0].Balance.Equal(dec("13000")))

	assert.Equal(t, ledger.StatusOK, entries[1].Status)
	assert.True(t, entries[1].Fee.Equal(dec("100")))
	assert.True(t, entries[1].Balance.Equal(dec("7900")))

	assert.Equal(t, ledger.StatusDeclined, entries[2].Status)
	assert.Equal(t, ledger.ReasonFrozen, entries[2].Reason)

	assert.Equal(t, ledger.StatusOK, entries[3].Status)
	assert.True(t, entries[3].Balance.Equal(dec("507900")))

	assert.True(t, entries[4].Amount.Equal(dec("5079")))
	for _, e := range entries {
		assert.Equal(t, fixedNow, e.Timestamp)
		assert.Equal(t, "1", e.AccountID)
	}

	acct, ok := reg.Find("1")
	require.True(t, ok)
	assert.True(t, acct.Balance().Equal(dec("512979")))
}

func TestRun_ChecksAndReset(t *testing.T) {
	r, _ := newTestRunner()
	ops := mustRead(t, `open,7,100,checking,
check,7,1,,
check,7,1,,
check,7,1,,
check,7,1,,
reset-checks,7,,,
check,7,1,,
`)

	entries, err := r.Run(ops)
	require.NoError(t, err)
	require.Len(t, entries, 7)

	fees := make([]string, 0, 5)
	for _, e := range entries {
		if e.Operation == string(OpCheck) {
			fees = append(fees, e.Fee.StringFixed(2))
		}
	}
	assert.Equal(t, []string{"0.00", "0.00", "0.00", "2.00", "0.00"}, fees)
	assert.True(t, entries[6].Balance.Equal(dec("93")))
}

func TestRun_ResetTransactions(t *testing.T) {
	r, reg := newTestRunner()
	ops := mustRead(t, `open,1,50000,money_market,
withdraw,1,1,,
reset-transactions,1,,,
`)

	_, err := r.Run(ops)
	require.NoError(t, err)

	acct, ok := reg.Find("1")
	require.True(t, ok)
	assert.Equal(t, 0, acct.TransactionCount())
}

func TestRun_HardErrorStops(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantRow string
	}{
		{
			name:    "unknown account",
			body:    "open,1,100,,\ndeposit,2,5,,\n",
			wantErr: registry.ErrNotFound,
			wantRow: "row 3",
		},
		{
			name:    "unsupported",
			body:    "open,1,100,,\ncheck,1,5,,\n",
			wantErr: ledger.ErrUnsupported,
			wantRow: "row 3",
		},
		{
			name:    "negative withdrawal",
			body:    "open,1,100,,\nwithdraw,1,-5,,\n",
			wantErr: ledger.ErrNegativeWithdrawal,
			wantRow: "row 3",
		},
		{
			name:    "below minimum",
			body:    "open,1,5,savings,\n",
			wantErr: ledger.ErrBelowMinimumBalance,
			wantRow: "row 2",
		},
		{
			name:    "duplicate",
			body:    "open,1,100,,\nopen,1,100,,\n",
			wantErr: registry.ErrDuplicateID,
			wantRow: "row 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRunner()
			entries, err := r.Run(mustRead(t, tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantRow)
			assert.Len(t, entries, strings.Count(tt.body, "\n")-1)
		})
	}
}

func TestRun_OpenGeneratesID(t *testing.T) {
	r, reg := newTestRunner()
	entries, err := r.Run(mustRead(t, "open,,25,,\n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].AccountID)

	_, ok := reg.Find(entries[0].AccountID)
	assert.True(t, ok)
}

func TestRun_OnResult(t *testing.T) {
	r, _ := newTestRunner()
	var reasons []ledger.Reason
	r.OnResult(func(op Operation, accountID string, res ledger.Result) {
		assert.Equal(t, "1", accountID)
		reasons = append(reasons, res.Reason)
	})

	_, err := r.Run(mustRead(t, "open,1,20,savings,\nwithdraw,1,50,,\n"))
	require.NoError(t, err)
	assert.Equal(t, []ledger.Reason{ledger.ReasonNone, ledger.ReasonBelowMinimum}, reasons)
}
