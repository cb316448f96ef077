package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shunichi-ikebuchi/file-manager/pkg/ledger"
	"github.com/spf13/cobra"
)

var showPurchases bool

// balanceCmd represents the balance command.
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Display the bank account balance",
	Long: `Display the balance stored in the ledger file without starting
the interactive shell.

Shows:
- Current balance
- Number of purchases
- Total spent

Example:
  fm balance
  fm balance --purchases`,
	Args: cobra.NoArgs,
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().BoolVar(&showPurchases, "purchases", false, "list every purchase")
}

func runBalance(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd, []string{"paths", "ledgerFile"})
	if err != nil {
		return err
	}
	defer env.close()

	store := ledger.NewStore(env.resolver.GetLedgerPath())
	slog.Debug("Loading ledger", "path", store.Path())

	acct, notice := ledger.Open(store)
	if notice != nil {
		slog.Warn("Ledger file unusable, showing an empty account", "path", store.Path(), "error", notice)
	}

	currency := env.cfg.Currency
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\n=== Bank Account ===")
	fmt.Fprintf(out, "Balance:         %s\n", ledger.FormatMoney(acct.Balance(), currency))
	fmt.Fprintf(out, "Total purchases: %d\n", len(acct.Purchases()))
	fmt.Fprintf(out, "Total spent:     %s\n", ledger.FormatMoney(acct.TotalSpent(), currency))

	if showPurchases {
		for i, p := range acct.Purchases() {
			fmt.Fprintf(out, "\n%d. %s\n", i+1, p.Date)
			fmt.Fprintf(out, "   %s - %s\n", p.Name, ledger.FormatMoney(p.Amount, currency))
			fmt.Fprintf(out, "   Balance after: %s\n", ledger.FormatMoney(p.BalanceAfter, currency))
		}
	}

	fmt.Fprintln(out)
	return nil
}
