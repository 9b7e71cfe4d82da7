package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/tierbank/internal/importer"
	"github.com/cleared-dev/tierbank/internal/ledger"
)

// FileName is the conventional config file name.
const FileName = "tierbank.yaml"

// Counter scopes.
const (
	ScopeTier    = "tier"
	ScopeAccount = "account"
)

// Config represents the top-level tierbank.yaml configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Policies PoliciesConfig `yaml:"policies"`
	Log      LogConfig      `yaml:"log"`
}

// DataConfig locates the support files used for bulk import.
type DataConfig struct {
	Dir   string         `yaml:"dir"`
	Files importer.Files `yaml:"files"`
}

// LedgerConfig controls registry behavior.
type LedgerConfig struct {
	CounterScope    string `yaml:"counter_scope"` // "tier" or "account"
	ImportTier      string `yaml:"import_tier"`
	PlaceholderSeed uint64 `yaml:"placeholder_seed"` // 0 = random
}

// PolicyConfig holds the rules every tier has.
type PolicyConfig struct {
	MinimumBalance decimal.Decimal `yaml:"minimum_balance"`
	WithdrawalFee  decimal.Decimal `yaml:"withdrawal_fee"`
}

// CheckingConfig adds the check rules.
type CheckingConfig struct {
	PolicyConfig   `yaml:",inline"`
	OverdraftFloor decimal.Decimal `yaml:"overdraft_floor"`
	FreeChecks     int             `yaml:"free_checks"`
	CheckFee       decimal.Decimal `yaml:"check_fee"`
}

// MoneyMarketConfig adds the transaction cap rules.
type MoneyMarketConfig struct {
	PolicyConfig    `yaml:",inline"`
	TransactionCap  int             `yaml:"transaction_cap"`
	BelowMinimumFee decimal.Decimal `yaml:"below_minimum_fee"`
}

// PoliciesConfig holds one policy per tier.
type PoliciesConfig struct {
	Account     PolicyConfig      `yaml:"account"`
	Savings     PolicyConfig      `yaml:"savings"`
	Checking    CheckingConfig    `yaml:"checking"`
	MoneyMarket MoneyMarketConfig `yaml:"money_market"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Load reads a tierbank.yaml file from disk. Fields missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config carrying the standard tier policies.
func Default() *Config {
	policies := ledger.DefaultPolicies()
	checking := policies[ledger.TierChecking]
	mm := policies[ledger.TierMoneyMarket]

	return &Config{
		Data: DataConfig{
			Dir:   "support",
			Files: importer.DefaultFiles(),
		},
		Ledger: LedgerConfig{
			CounterScope: ScopeTier,
			ImportTier:   string(ledger.TierAccount),
		},
		Policies: PoliciesConfig{
			Account: policyConfig(policies[ledger.TierAccount]),
			Savings: policyConfig(policies[ledger.TierSavings]),
			Checking: CheckingConfig{
				PolicyConfig:   policyConfig(checking),
				OverdraftFloor: checking.Checks.Floor,
				FreeChecks:     checking.Checks.FreeChecks,
				CheckFee:       checking.Checks.Fee,
			},
			MoneyMarket: MoneyMarketConfig{
				PolicyConfig:    policyConfig(mm),
				TransactionCap:  mm.Transactions.Cap,
				BelowMinimumFee: mm.Transactions.BelowMinimumFee,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func policyConfig(p ledger.Policy) PolicyConfig {
	return PolicyConfig{MinimumBalance: p.MinimumBalance, WithdrawalFee: p.WithdrawalFee}
}

// Validate checks values the ledger cannot interpret.
func (c *Config) Validate() error {
	switch c.Ledger.CounterScope {
	case ScopeTier, ScopeAccount:
	default:
		return fmt.Errorf("invalid counter_scope %q: want %q or %q", c.Ledger.CounterScope, ScopeTier, ScopeAccount)
	}
	if _, err := ledger.ParseTier(c.Ledger.ImportTier); err != nil {
		return fmt.Errorf("invalid import_tier: %w", err)
	}
	if c.Policies.MoneyMarket.TransactionCap <= 0 {
		return fmt.Errorf("invalid transaction_cap %d: must be positive", c.Policies.MoneyMarket.TransactionCap)
	}
	if c.Policies.Checking.FreeChecks < 0 {
		return fmt.Errorf("invalid free_checks %d: must not be negative", c.Policies.Checking.FreeChecks)
	}
	return nil
}

// LedgerPolicies converts the policy section to ledger policies.
func (c *Config) LedgerPolicies() ledger.Policies {
	p := c.Policies
	savings := ledger.DefaultPolicy(ledger.TierSavings)
	savings.MinimumBalance = p.Savings.MinimumBalance
	savings.WithdrawalFee = p.Savings.WithdrawalFee

	mm := ledger.DefaultPolicy(ledger.TierMoneyMarket)
	mm.MinimumBalance = p.MoneyMarket.MinimumBalance
	mm.WithdrawalFee = p.MoneyMarket.WithdrawalFee
	mm.Transactions = &ledger.TransactionRules{
		Cap:             p.MoneyMarket.TransactionCap,
		BelowMinimumFee: p.MoneyMarket.BelowMinimumFee,
	}

	return ledger.Policies{
		ledger.TierAccount: {
			MinimumBalance: p.Account.MinimumBalance,
			WithdrawalFee:  p.Account.WithdrawalFee,
		},
		ledger.TierSavings: savings,
		ledger.TierChecking: {
			MinimumBalance: p.Checking.MinimumBalance,
			WithdrawalFee:  p.Checking.WithdrawalFee,
			Checks: &ledger.CheckRules{
				Floor:      p.Checking.OverdraftFloor,
				FreeChecks: p.Checking.FreeChecks,
				Fee:        p.Checking.CheckFee,
			},
		},
		ledger.TierMoneyMarket: mm,
	}
}
