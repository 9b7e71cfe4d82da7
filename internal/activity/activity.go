// Package activity records the outcome of every operation run against the
// ledger as rows of a CSV file.
package activity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tierbank/internal/ledger"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp time.Time
	AccountID string
	Operation string
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	Status    ledger.Status
	Reason    ledger.Reason
	Balance   decimal.Decimal
}

// Header is the CSV header for an activity file.
const Header = "timestamp,account_id,operation,amount,fee,status,reason,balance"

const (
	numFields    = 8
	colTimestamp = 0
	colAccountID = 1
	colOperation = 2
	colAmount    = 3
	colFee       = 4
	colStatus    = 5
	colReason    = 6
	colBalance   = 7
)

// FromResult builds the Entry for an operation that produced res.
func FromResult(at time.Time, accountID, op string, res ledger.Result) Entry {
	return Entry{
		Timestamp: at,
		AccountID: accountID,
		Operation: op,
		Amount:    res.Amount,
		Fee:       res.Fee,
		Status:    res.Status,
		Reason:    res.Reason,
		Balance:   res.Balance,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAccountID] = e.AccountID
	row[colOperation] = e.Operation
	row[colAmount] = e.Amount.StringFixed(2)
	row[colFee] = e.Fee.StringFixed(2)
	row[colStatus] = string(e.Status)
	row[colReason] = string(e.Reason)
	row[colBalance] = e.Balance.StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	amounts := make([]decimal.Decimal, 0, 3)
	for _, col := range []int{colAmount, colFee, colBalance} {
		d, err := decimal.NewFromString(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing amount %q: %w", record[col], err)
		}
		amounts = append(amounts, d)
	}

	return Entry{
		Timestamp: ts,
		AccountID: record[colAccountID],
		Operation: record[colOperation],
		Amount:    amounts[0],
		Fee:       amounts[1],
		Status:    ledger.Status(record[colStatus]),
		Reason:    ledger.Reason(record[colReason]),
		Balance:   amounts[2],
	}, nil
}

// Append writes entries to path, creating the file, its directory and the
// header if needed.
func Append(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating activity dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
