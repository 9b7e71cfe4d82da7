// Package registry keeps every account opened during a run and looks them up by ID.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tierbank/internal/id"
	"github.com/cleared-dev/tierbank/internal/ledger"
	"github.com/cleared-dev/tierbank/internal/model"
)

var (
	// ErrDuplicateID is returned when an account ID is already registered.
	ErrDuplicateID = errors.New("duplicate account id")

	// ErrNotFound is returned when no account has the requested ID.
	ErrNotFound = errors.New("account not found")
)

// CounterScope decides which accounts share a cycle counter.
type CounterScope int

const (
	// ScopeTier shares one check counter and one transaction counter across
	// every account of a tier.
	ScopeTier CounterScope = iota
	// ScopeAccount gives each account its own counters.
	ScopeAccount
)

// OwnerSource supplies placeholder owners for accounts opened without one.
type OwnerSource interface {
	Owner() model.Owner
}

// Registry holds every successfully opened account. Accounts are never removed.
type Registry struct {
	policies ledger.Policies
	scope    CounterScope
	shared   map[ledger.Tier]ledger.Counters
	owners   OwnerSource
	now      func() time.Time
	logger   *slog.Logger

	accounts []*ledger.Account
	byID     map[string]*ledger.Account
}

// Option configures a Registry.
type Option func(*Registry)

// WithPolicies sets the policies accounts are opened with.
func WithPolicies(p ledger.Policies) Option {
	return func(r *Registry) { r.policies = p }
}

// WithCounterScope sets how cycle counters are shared.
func WithCounterScope(s CounterScope) Option {
	return func(r *Registry) { r.scope = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithClock sets the clock used for accounts opened without a date.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// New creates an empty Registry. owners synthesizes owners for accounts
// opened without one; when nil those accounts get an empty owner.
func New(owners OwnerSource, opts ...Option) *Registry {
	r := &Registry{
		policies: ledger.DefaultPolicies(),
		scope:    ScopeTier,
		shared:   make(map[ledger.Tier]ledger.Counters),
		owners:   owners,
		now:      time.Now,
		logger:   slog.Default(),
		byID:     make(map[string]*ledger.Account),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OpenParams holds parameters for opening an account through the registry.
type OpenParams struct {
	ID      string // generated when empty
	Tier    ledger.Tier
	Balance decimal.Decimal
	Opened  time.Time    // now when zero
	Owner   *model.Owner // placeholder when nil
}

// Open opens an account and registers it.
func (r *Registry) Open(params OpenParams) (*ledger.Account, error) {
	accountID := params.ID
	if accountID == "" {
		accountID = id.New()
	}
	if _, ok := r.byID[accountID]; ok {
		return nil, fmt.Errorf("open account %s: %w", accountID, ErrDuplicateID)
	}

	opened := params.Opened
	if opened.IsZero() {
		opened = r.now()
	}

	var owner model.Owner
	switch {
	case params.Owner != nil:
		owner = *params.Owner
	case r.owners != nil:
		owner = r.owners.Owner()
	}

	acct, err := ledger.Open(ledger.OpenParams{
		ID:      accountID,
		Tier:    params.Tier,
		Balance: params.Balance,
		Opened:  opened,
		Owner:   owner,
	}, r.policies.For(params.Tier), r.countersFor(params.Tier))
	if err != nil {
		return nil, err
	}

	r.accounts = append(r.accounts, acct)
	r.byID[accountID] = acct
	r.logger.Debug("opened account", "account", accountID, "tier", params.Tier, "balance", params.Balance.StringFixed(2))
	return acct, nil
}

func (r *Registry) countersFor(t ledger.Tier) ledger.Counters {
	if r.scope == ScopeAccount {
		return ledger.NewCounters()
	}
	c, ok := r.shared[t]
	if !ok {
		c = ledger.NewCounters()
		r.shared[t] = c
	}
	return c
}

// All returns every registered account in the order they were opened.
func (r *Registry) All() []*ledger.Account {
	return r.accounts
}

// Find returns the account with the given ID.
func (r *Registry) Find(accountID string) (*ledger.Account, bool) {
	a, ok := r.byID[accountID]
	return a, ok
}

// Lookup is Find returning ErrNotFound for unknown IDs.
func (r *Registry) Lookup(accountID string) (*ledger.Account, error) {
	a, ok := r.byID[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}
	return a, nil
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int {
	return len(r.accounts)
}
