package cmd

import (
	"fmt"
	"strings"

	"github.com/awesomegic/teller/internal/service"
	"github.com/awesomegic/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type transactionFlags struct {
	Date    string
	Account string
	Type    string
	Amount  string
}

type transactionRunner struct {
	svc   *service.Service
	flags *transactionFlags
	cmd   *cobra.Command
}

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	flags := &transactionFlags{}

	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"txn", "t"},
		Short:   "Input a deposit or withdrawal",
		Long: `Input a deposit or withdrawal transaction.

The first transaction of a new account must be a deposit and opens the
account. After each entry the account's statement is printed.

Examples:
  # Interactive mode
  teller transaction

  # Quick mode with flags
  teller transaction --date 20250401 --account AC001 --type D --amount 150.00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transactionRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Transaction date (YYYYMMDD)")
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account number")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type: D (deposit) or W (withdrawal)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "m", "", "Transaction amount (e.g. 150 or 150.50)")

	return cmd
}

func (r *transactionRunner) Run() error {
	hasFlags := r.cmd.Flags().Changed("date") || r.cmd.Flags().Changed("account") ||
		r.cmd.Flags().Changed("type") || r.cmd.Flags().Changed("amount")

	if !hasFlags {
		runner := &menuRunner{svc: r.svc}
		return runner.inputTransactions()
	}

	if r.flags.Date == "" || r.flags.Account == "" || r.flags.Type == "" || r.flags.Amount == "" {
		return fmt.Errorf("when using flags, --date, --account, --type and --amount are all required")
	}

	line := strings.Join([]string{r.flags.Date, r.flags.Account, r.flags.Type, r.flags.Amount}, " ")
	entry, err := parseTransactionLine(line)
	if err != nil {
		return err
	}

	if err := r.svc.Transaction.InputTransaction(entry); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction recorded for account %s\n", entry.AccountNumber)

	lines, err := r.svc.Statement.GetAccountStatement(entry.AccountNumber)
	if err != nil {
		return err
	}

	return views.NewStatementView(false).Render(entry.AccountNumber, lines)
}
