package cmd

import (
	"fmt"
	"strings"

	"github.com/awesomegic/teller/internal/service"
	"github.com/awesomegic/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type ruleFlags struct {
	Date string
	ID   string
	Rate string
}

type ruleRunner struct {
	svc   *service.Service
	flags *ruleFlags
	cmd   *cobra.Command
}

func NewRuleCmd(svc *service.Service) *cobra.Command {
	flags := &ruleFlags{}

	cmd := &cobra.Command{
		Use:     "rule",
		Aliases: []string{"r"},
		Short:   "Define an interest rule",
		Long: `Define an annualized interest rule effective from a date.

Only one rule can exist per effective date; defining a rule on an existing
date replaces it. All rules are listed after each definition.

Examples:
  # Interactive mode
  teller rule

  # Quick mode with flags
  teller rule --date 20250401 --id RULE03 --rate 2.20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ruleRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Effective date (YYYYMMDD)")
	cmd.Flags().StringVarP(&flags.ID, "id", "i", "", "Rule identifier")
	cmd.Flags().StringVarP(&flags.Rate, "rate", "r", "", "Annualized rate in percent, between 0 and 100")

	return cmd
}

func (r *ruleRunner) Run() error {
	hasFlags := r.cmd.Flags().Changed("date") || r.cmd.Flags().Changed("id") ||
		r.cmd.Flags().Changed("rate")

	if !hasFlags {
		runner := &menuRunner{svc: r.svc}
		return runner.defineRules()
	}

	if r.flags.Date == "" || r.flags.ID == "" || r.flags.Rate == "" {
		return fmt.Errorf("when using flags, --date, --id and --rate are all required")
	}

	line := strings.Join([]string{r.flags.Date, r.flags.ID, r.flags.Rate}, " ")
	date, ruleID, rate, err := parseRuleLine(line)
	if err != nil {
		return err
	}

	if err := r.svc.Rule.DefineRule(date, ruleID, rate); err != nil {
		return err
	}

	pterm.Success.Printf("Interest rule %s defined\n", ruleID)

	rules, err := r.svc.Rule.ListRules()
	if err != nil {
		return err
	}

	return views.NewRuleListView().Render(rules)
}
