// Package script reads batches of account operations from CSV and runs them
// against a registry.
package script

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tierbank/internal/id"
	"github.com/cleared-dev/tierbank/internal/importer"
	"github.com/cleared-dev/tierbank/internal/ledger"
)

// Op names an operation a script row performs.
type Op string

const (
	OpOpen              Op = "open"
	OpDeposit           Op = "deposit"
	OpWithdraw          Op = "withdraw"
	OpCheck             Op = "check"
	OpInterest          Op = "interest"
	OpResetChecks       Op = "reset-checks"
	OpResetTransactions Op = "reset-transactions"
)

// ErrUnknownOp is returned for rows naming an operation that does not exist.
var ErrUnknownOp = errors.New("unknown operation")

// Header is the CSV header a script file starts with.
const Header = "op,account_id,amount,tier,opened"

const (
	numFields    = 5
	colOp        = 0
	colAccountID = 1
	colAmount    = 2
	colTier      = 3
	colOpened    = 4
)

// Operation is one row of a script. Amount is the opening balance for open,
// the rate in percent for interest, and unused by the reset operations.
type Operation struct {
	Row       int
	Op        Op
	AccountID string
	Amount    decimal.Decimal
	Tier      ledger.Tier
	Opened    time.Time
}

func parseOp(s string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(s)))
	switch op {
	case OpOpen, OpDeposit, OpWithdraw, OpCheck, OpInterest, OpResetChecks, OpResetTransactions:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

func (op Op) needsAmount() bool {
	switch op {
	case OpOpen, OpDeposit, OpWithdraw, OpCheck, OpInterest:
		return true
	}
	return false
}

// ReadOperations parses a script CSV. The first row must be Header.
func ReadOperations(r io.Reader) ([]Operation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading script CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if got := strings.Join(records[0], ","); got != Header {
		return nil, fmt.Errorf("unexpected header %q, want %q", got, Header)
	}

	var ops []Operation
	for i, rec := range records[1:] {
		op, err := UnmarshalOperation(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		op.Row = i + 2
		ops = append(ops, op)
	}
	return ops, nil
}

// UnmarshalOperation converts a CSV row to an Operation.
func UnmarshalOperation(record []string) (Operation, error) {
	if len(record) != numFields {
		return Operation{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	op, err := parseOp(record[colOp])
	if err != nil {
		return Operation{}, err
	}
	result := Operation{Op: op}

	if raw := strings.TrimSpace(record[colAccountID]); raw != "" {
		result.AccountID, err = id.Normalize(raw)
		if err != nil {
			return Operation{}, err
		}
	} else if op != OpOpen {
		return Operation{}, fmt.Errorf("%s: account_id is required", op)
	}

	if raw := strings.TrimSpace(record[colAmount]); raw != "" {
		result.Amount, err = decimal.NewFromString(raw)
		if err != nil {
			return Operation{}, fmt.Errorf("parsing amount %q: %w", raw, err)
		}
	} else if op.needsAmount() {
		return Operation{}, fmt.Errorf("%s: amount is required", op)
	}

	if op == OpOpen {
		result.Tier, err = ledger.ParseTier(record[colTier])
		if err != nil {
			return Operation{}, err
		}
		if strings.TrimSpace(record[colOpened]) != "" {
			result.Opened, err = importer.ParseDate(record[colOpened])
			if err != nil {
				return Operation{}, err
			}
		}
	}

	return result, nil
}
