package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tierbank/internal/id"
	"github.com/cleared-dev/tierbank/internal/model"
)

// The three support files carry no header row.

const (
	ownerNumFields = 6
	colOwnerID     = 0
	colLastName    = 1
	colFirstName   = 2
	colStreet      = 3
	colCity        = 4
	colState       = 5
)

const (
	seedNumFields = 3
	colAccountID  = 0
	colCents      = 1
	colOpened     = 2
)

const (
	linkNumFields  = 2
	colLinkAccount = 0
	colLinkOwner   = 1
)

// ReadOwners reads owners.csv.
func ReadOwners(r io.Reader) ([]model.Owner, error) {
	records, err := readRecords(r, ownerNumFields)
	if err != nil {
		return nil, fmt.Errorf("reading owners CSV: %w", err)
	}

	var owners []model.Owner
	for i, rec := range records {
		o, err := UnmarshalOwner(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		owners = append(owners, o)
	}
	return owners, nil
}

// ReadSeeds reads accounts.csv.
func ReadSeeds(r io.Reader) ([]model.AccountSeed, error) {
	records, err := readRecords(r, seedNumFields)
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	var seeds []model.AccountSeed
	for i, rec := range records {
		s, err := UnmarshalSeed(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		seeds = append(seeds, s)
	}
	return seeds, nil
}

// ReadLinks reads account_owners.csv.
func ReadLinks(r io.Reader) ([]model.OwnerLink, error) {
	records, err := readRecords(r, linkNumFields)
	if err != nil {
		return nil, fmt.Errorf("reading account owners CSV: %w", err)
	}

	var links []model.OwnerLink
	for i, rec := range records {
		l, err := UnmarshalLink(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		links = append(links, l)
	}
	return links, nil
}

func readRecords(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

// UnmarshalOwner converts an owners.csv row to an Owner.
func UnmarshalOwner(record []string) (model.Owner, error) {
	if len(record) != ownerNumFields {
		return model.Owner{}, fmt.Errorf("expected %d fields, got %d", ownerNumFields, len(record))
	}
	ownerID, err := id.Normalize(record[colOwnerID])
	if err != nil {
		return model.Owner{}, fmt.Errorf("parsing owner_id %q: %w", record[colOwnerID], err)
	}
	return model.Owner{
		ID:            ownerID,
		FirstName:     record[colFirstName],
		LastName:      record[colLastName],
		StreetAddress: record[colStreet],
		City:          record[colCity],
		State:         record[colState],
	}, nil
}

// UnmarshalSeed converts an accounts.csv row to an AccountSeed. The balance
// column holds cents.
func UnmarshalSeed(record []string) (model.AccountSeed, error) {
	if len(record) != seedNumFields {
		return model.AccountSeed{}, fmt.Errorf("expected %d fields, got %d", seedNumFields, len(record))
	}
	accountID, err := id.Normalize(record[colAccountID])
	if err != nil {
		return model.AccountSeed{}, fmt.Errorf("parsing account_id %q: %w", record[colAccountID], err)
	}
	cents, err := decimal.NewFromString(record[colCents])
	if err != nil {
		return model.AccountSeed{}, fmt.Errorf("parsing balance %q: %w", record[colCents], err)
	}
	opened, err := ParseDate(record[colOpened])
	if err != nil {
		return model.AccountSeed{}, err
	}
	return model.AccountSeed{
		ID:      accountID,
		Balance: cents.Shift(-2),
		Opened:  opened,
	}, nil
}

// UnmarshalLink converts an account_owners.csv row to an OwnerLink.
func UnmarshalLink(record []string) (model.OwnerLink, error) {
	if len(record) != linkNumFields {
		return model.OwnerLink{}, fmt.Errorf("expected %d fields, got %d", linkNumFields, len(record))
	}
	accountID, err := id.Normalize(record[colLinkAccount])
	if err != nil {
		return model.OwnerLink{}, fmt.Errorf("parsing account_id %q: %w", record[colLinkAccount], err)
	}
	ownerID, err := id.Normalize(record[colLinkOwner])
	if err != nil {
		return model.OwnerLink{}, fmt.Errorf("parsing owner_id %q: %w", record[colLinkOwner], err)
	}
	return model.OwnerLink{AccountID: accountID, OwnerID: ownerID}, nil
}

// MarshalOwner converts an Owner to an owners.csv row.
func MarshalOwner(o model.Owner) []string {
	row := make([]string, ownerNumFields)
	row[colOwnerID] = o.ID
	row[colLastName] = o.LastName
	row[colFirstName] = o.FirstName
	row[colStreet] = o.StreetAddress
	row[colCity] = o.City
	row[colState] = o.State
	return row
}

// MarshalSeed converts an AccountSeed to an accounts.csv row.
func MarshalSeed(s model.AccountSeed) []string {
	row := make([]string, seedNumFields)
	row[colAccountID] = s.ID
	row[colCents] = s.Balance.Shift(2).Round(0).String()
	row[colOpened] = s.Opened.Format(DateFormat)
	return row
}

// MarshalLink converts an OwnerLink to an account_owners.csv row.
func MarshalLink(l model.OwnerLink) []string {
	row := make([]string, linkNumFields)
	row[colLinkAccount] = l.AccountID
	row[colLinkOwner] = l.OwnerID
	return row
}

// WriteRows writes pre-marshaled rows with no header.
func WriteRows(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
