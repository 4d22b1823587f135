package cmd

import (
	"fmt"
	"strings"

	"github.com/awesomegic/teller/internal/model"
	"github.com/awesomegic/teller/internal/service"
	"github.com/awesomegic/teller/internal/ui/views"
	"github.com/awesomegic/teller/internal/validation"
	"github.com/spf13/cobra"
)

type statementFlags struct {
	Account string
	Month   string
}

type statementRunner struct {
	svc   *service.Service
	flags *statementFlags
}

func NewStatementCmd(svc *service.Service) *cobra.Command {
	flags := &statementFlags{}

	cmd := &cobra.Command{
		Use:     "statement",
		Aliases: []string{"st", "p"},
		Short:   "Print an account statement",
		Long: `Print an account statement.

With --month, prints the monthly statement for that period with running
balances and the interest posting for the month. Without it, prints the
account's full transaction history.

Examples:
  # Full history
  teller statement --account AC001

  # Monthly statement with interest
  teller statement --account AC001 --month 202504`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &statementRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Account number")
	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Statement month (YYYYMM)")

	return cmd
}

func (r *statementRunner) Run() error {
	if r.flags.Account == "" {
		return fmt.Errorf("--account is required")
	}

	number := strings.ToUpper(r.flags.Account)
	if err := validation.ValidateAccountNumber(number); err != nil {
		return err
	}

	var lines []model.StatementLine
	var err error

	withBalance := r.flags.Month != ""
	if withBalance {
		lines, err = r.svc.Statement.GetMonthlyStatement(number, r.flags.Month)
	} else {
		lines, err = r.svc.Statement.GetAccountStatement(number)
	}
	if err != nil {
		return err
	}

	return views.NewStatementView(withBalance).Render(number, lines)
}
