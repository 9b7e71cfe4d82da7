package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/cleared-dev/tierbank/internal/config"
	"github.com/cleared-dev/tierbank/internal/importer"
	"github.com/cleared-dev/tierbank/internal/ledger"
	"github.com/cleared-dev/tierbank/internal/logging"
	"github.com/cleared-dev/tierbank/internal/placeholder"
	"github.com/cleared-dev/tierbank/internal/registry"
)

// environment is what every ledger command starts from.
type environment struct {
	cfg    *config.Config
	root   string // directory holding the config file
	logger *slog.Logger
}

// loadEnvironment reads the config at path, falling back to defaults when the
// file does not exist, and builds a logger writing to logOut.
func loadEnvironment(path string, logOut io.Writer) (*environment, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	return &environment{cfg: cfg, root: root, logger: logger}, nil
}

func (e *environment) dataDir() string {
	if filepath.IsAbs(e.cfg.Data.Dir) {
		return e.cfg.Data.Dir
	}
	return filepath.Join(e.root, e.cfg.Data.Dir)
}

func (e *environment) newRegistry() *registry.Registry {
	scope := registry.ScopeTier
	if e.cfg.Ledger.CounterScope == config.ScopeAccount {
		scope = registry.ScopeAccount
	}
	return registry.New(
		placeholder.New(e.cfg.Ledger.PlaceholderSeed),
		registry.WithPolicies(e.cfg.LedgerPolicies()),
		registry.WithCounterScope(scope),
		registry.WithLogger(e.logger),
	)
}

// importAccounts opens every account in the support files.
func (e *environment) importAccounts(reg *registry.Registry) error {
	tier, err := ledger.ParseTier(e.cfg.Ledger.ImportTier)
	if err != nil {
		return err
	}
	b, err := importer.Load(e.dataDir(), e.cfg.Data.Files)
	if err != nil {
		return fmt.Errorf("loading support files: %w", err)
	}
	if _, err := reg.Import(tier, b.Owners, b.Seeds, b.Links); err != nil {
		return fmt.Errorf("importing accounts: %w", err)
	}
	return nil
}

// openLedger builds a registry holding every imported account.
func openLedger(configPath string, logOut io.Writer) (*registry.Registry, error) {
	env, err := loadEnvironment(configPath, logOut)
	if err != nil {
		return nil, err
	}
	reg := env.newRegistry()
	if err := env.importAccounts(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
