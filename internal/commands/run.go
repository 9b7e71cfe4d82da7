package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tierbank/internal/activity"
	"github.com/cleared-dev/tierbank/internal/ledger"
	"github.com/cleared-dev/tierbank/internal/script"
)

func newRunCommand(configPath *string) *cobra.Command {
	var activityPath string
	var skipImport bool

	cmd := &cobra.Command{
		Use:   "run <script.csv>",
		Short: "Run a script of account operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := readScript(args[0])
			if err != nil {
				return err
			}

			env, err := loadEnvironment(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			reg := env.newRegistry()
			if !skipImport {
				if err := env.importAccounts(reg); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			runner := script.NewRunner(reg, env.logger)
			runner.OnResult(func(op script.Operation, accountID string, res ledger.Result) {
				printResult(out, op, accountID, res)
			})

			entries, runErr := runner.Run(ops)
			if activityPath != "" && len(entries) > 0 {
				if err := activity.Append(activityPath, entries); err != nil {
					return err
				}
			}
			if runErr != nil {
				return runErr
			}

			declined := 0
			for _, e := range entries {
				if e.Status == ledger.StatusDeclined {
					declined++
				}
			}
			fmt.Fprintf(out, "Ran %d operations (%d declined)\n", len(entries), declined)
			return nil
		},
	}

	cmd.Flags().StringVar(&activityPath, "activity", "", "append an activity record to this CSV file")
	cmd.Flags().BoolVar(&skipImport, "skip-import", false, "start from an empty ledger instead of the support files")

	return cmd
}

func readScript(path string) ([]script.Operation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()
	return script.ReadOperations(f)
}

func printResult(out io.Writer, op script.Operation, accountID string, res ledger.Result) {
	c := color.New(color.Reset)
	switch {
	case res.Declined():
		c = color.New(color.FgRed)
	case res.Froze:
		c = color.New(color.FgYellow)
	case res.Unfroze:
		c = color.New(color.FgGreen)
	}
	c.Fprintf(out, "row %d %s #%s: %s\n", op.Row, op.Op, accountID, res)
}
