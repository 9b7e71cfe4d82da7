package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tierbank/internal/buildinfo"
	"github.com/cleared-dev/tierbank/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "tierbank",
		Short:   "Tiered bank account ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "path to "+config.FileName)

	rootCmd.AddCommand(
		newInitCommand(),
		newListCommand(&configPath),
		newShowCommand(&configPath),
		newRunCommand(&configPath),
	)

	return rootCmd
}
