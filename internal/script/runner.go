package script

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tierbank/internal/activity"
	"github.com/cleared-dev/tierbank/internal/ledger"
	"github.com/cleared-dev/tierbank/internal/registry"
)

// Runner applies operations to a registry and records what each one did.
type Runner struct {
	reg    *registry.Registry
	logger *slog.Logger
	now    func() time.Time
	report func(Operation, string, ledger.Result)
}

// NewRunner creates a Runner over reg.
func NewRunner(reg *registry.Registry, logger *slog.Logger) *Runner {
	return &Runner{reg: reg, logger: logger, now: time.Now}
}

// OnResult registers fn to be called with the account ID and result of every
// operation that completes, declined or not.
func (r *Runner) OnResult(fn func(op Operation, accountID string, res ledger.Result)) {
	r.report = fn
}

// Run applies ops in order and returns one activity entry per operation.
// Declines are recorded and do not stop the run. The first hard error stops
// it and is returned along with the entries recorded so far.
func (r *Runner) Run(ops []Operation) ([]activity.Entry, error) {
	entries := make([]activity.Entry, 0, len(ops))
	for _, op := range ops {
		accountID, res, err := r.apply(op)
		if err != nil {
			return entries, fmt.Errorf("row %d (%s): %w", op.Row, op.Op, err)
		}
		if res.Declined() {
			r.logger.Info("operation declined", "row", op.Row, "op", op.Op, "account", accountID, "reason", res.Reason)
		}
		if r.report != nil {
			r.report(op, accountID, res)
		}
		entries = append(entries, activity.FromResult(r.now(), accountID, string(op.Op), res))
	}
	return entries, nil
}

func (r *Runner) apply(op Operation) (string, ledger.Result, error) {
	if op.Op == OpOpen {
		acct, err := r.reg.Open(registry.OpenParams{
			ID:      op.AccountID,
			Tier:    op.Tier,
			Balance: op.Amount,
			Opened:  op.Opened,
		})
		if err != nil {
			return op.AccountID, ledger.Result{}, err
		}
		return acct.ID(), committed(acct, op.Amount), nil
	}

	acct, err := r.reg.Lookup(op.AccountID)
	if err != nil {
		return op.AccountID, ledger.Result{}, err
	}

	var res ledger.Result
	switch op.Op {
	case OpDeposit:
		res, err = acct.Deposit(op.Amount)
	case OpWithdraw:
		res, err = acct.Withdraw(op.Amount)
	case OpCheck:
		res, err = acct.WithdrawUsingCheck(op.Amount)
	case OpInterest:
		var interest decimal.Decimal
		if interest, err = acct.AddInterest(op.Amount); err == nil {
			res = committed(acct, interest)
		}
	case OpResetChecks:
		if err = acct.ResetChecks(); err == nil {
			res = committed(acct, decimal.Zero)
		}
	case OpResetTransactions:
		if err = acct.ResetTransactions(); err == nil {
			res = committed(acct, decimal.Zero)
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
	return acct.ID(), res, err
}

// committed is the result of an operation that cannot be declined.
func committed(acct *ledger.Account, amount decimal.Decimal) ledger.Result {
	return ledger.Result{
		Status:  ledger.StatusOK,
		Amount:  amount,
		Balance: acct.Balance(),
		Floor:   acct.MinimumBalance(),
	}
}
