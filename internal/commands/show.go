package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tierbank/internal/id"
	"github.com/cleared-dev/tierbank/internal/ledger"
)

func newShowCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-id>",
		Short: "Print the details of one imported account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := id.Normalize(args[0])
			if err != nil {
				return err
			}

			reg, err := openLedger(*configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			acct, err := reg.Lookup(accountID)
			if err != nil {
				return err
			}

			printDetails(cmd, acct)
			return nil
		},
	}
}

func printDetails(cmd *cobra.Command, acct *ledger.Account) {
	out := cmd.OutOrStdout()
	color.New(color.FgCyan).Fprintln(out, acct.Overview().String())

	owner := acct.Owner()
	fmt.Fprintf(out, "  tier:            %s\n", acct.Tier())
	fmt.Fprintf(out, "  owner address:   %s, %s, %s\n", owner.StreetAddress, owner.City, owner.State)
	fmt.Fprintf(out, "  minimum balance: $%s\n", acct.MinimumBalance().StringFixed(2))
	fmt.Fprintf(out, "  withdrawal fee:  $%s\n", acct.WithdrawalFee().StringFixed(2))

	policy := acct.Policy()
	if policy.Checks != nil {
		fmt.Fprintf(out, "  checks used:     %d of %d free\n", acct.ChecksUsed(), policy.Checks.FreeChecks)
	}
	if policy.Transactions != nil {
		fmt.Fprintf(out, "  transactions:    %d of %d\n", acct.TransactionCount(), policy.Transactions.Cap)
		if !acct.Active() {
			color.New(color.FgRed).Fprintln(out, "  frozen")
		}
	}
}
