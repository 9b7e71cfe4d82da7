package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print an overview of every imported account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := openLedger(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			overview := color.New(color.FgCyan)
			for _, acct := range reg.All() {
				overview.Fprintln(out, acct.Overview().String())
			}
			fmt.Fprintf(out, "%d accounts\n", reg.Len())
			return nil
		},
	}
}
