package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tierbank/internal/config"
	"github.com/cleared-dev/tierbank/internal/importer"
	"github.com/cleared-dev/tierbank/internal/placeholder"
)

func newInitCommand() *cobra.Command {
	var sample int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new tierbank ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, sample, seed); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized tierbank ledger at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().IntVar(&sample, "sample", 0, "number of sample owners and accounts to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for sample data (0 = random)")

	return cmd
}

func runInit(dir string, sample int, seed uint64) error {
	if sample < 0 {
		return fmt.Errorf("invalid --sample %d: must not be negative", sample)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write tierbank.yaml.
	cfg := config.Default()
	cfg.Ledger.PlaceholderSeed = seed
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the support files, empty unless sample data was requested.
	bundle := placeholder.New(seed).Sample(sample, time.Now())
	if err := importer.Save(filepath.Join(dir, cfg.Data.Dir), cfg.Data.Files, bundle); err != nil {
		return fmt.Errorf("writing support files: %w", err)
	}

	return nil
}
