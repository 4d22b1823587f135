package cmd

import (
	"strings"

	"github.com/awesomegic/teller/internal/errhandler"
	"github.com/awesomegic/teller/internal/service"
	"github.com/awesomegic/teller/internal/ui/prompts"
	"github.com/awesomegic/teller/internal/ui/views"
	"github.com/pterm/pterm"
)

type menuRunner struct {
	svc      *service.Service
	bankName string
}

// Run drives the interactive main menu until the user quits.
func (r *menuRunner) Run() error {
	for {
		choice, err := prompts.PromptMainMenu(r.bankName)
		if err != nil {
			if errhandler.IsInterrupt(err) {
				return nil
			}
			return err
		}

		switch choice {
		case prompts.MenuInputTransactions:
			err = r.inputTransactions()
		case prompts.MenuDefineRules:
			err = r.defineRules()
		case prompts.MenuPrintStatement:
			err = r.printStatements()
		case prompts.MenuQuit:
			pterm.Println()
			pterm.Printf("Thank you for banking with %s.\n", r.bankName)
			pterm.Println("Have a nice day!")
			return nil
		}

		if err != nil {
			if errhandler.IsInterrupt(err) {
				return nil
			}
			return err
		}
	}
}

// inputTransactions loops on transaction entry until a blank line. Bad
// entries are reported and the prompt repeats, matching the teller-window
// flow of entering a batch of slips.
func (r *menuRunner) inputTransactions() error {
	for {
		line, err := prompts.PromptTransactionEntry()
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		entry, err := parseTransactionLine(line)
		if err != nil {
			pterm.Error.Println(capitalize(err.Error()))
			continue
		}

		if err := r.svc.Transaction.InputTransaction(entry); err != nil {
			pterm.Error.Println(capitalize(err.Error()))
			continue
		}

		lines, err := r.svc.Statement.GetAccountStatement(entry.AccountNumber)
		if err != nil {
			return err
		}

		if err := views.NewStatementView(false).Render(entry.AccountNumber, lines); err != nil {
			return err
		}
	}
}

func (r *menuRunner) defineRules() error {
	for {
		line, err := prompts.PromptRuleEntry()
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		date, ruleID, rate, err := parseRuleLine(line)
		if err != nil {
			pterm.Error.Println(capitalize(err.Error()))
			continue
		}

		if err := r.svc.Rule.DefineRule(date, ruleID, rate); err != nil {
			pterm.Error.Println(capitalize(err.Error()))
			continue
		}

		rules, err := r.svc.Rule.ListRules()
		if err != nil {
			return err
		}

		if err := views.NewRuleListView().Render(rules); err != nil {
			return err
		}
	}
}

func (r *menuRunner) printStatements() error {
	for {
		line, err := prompts.PromptStatementEntry()
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		number, yearMonth, err := parseStatementLine(line)
		if err != nil {
			pterm.Error.Println(capitalize(err.Error()))
			continue
		}

		lines, err := r.svc.Statement.GetMonthlyStatement(number, yearMonth)
		if err != nil {
			pterm.Error.Println(capitalize(err.Error()))
			continue
		}

		if err := views.NewStatementView(true).Render(number, lines); err != nil {
			return err
		}
	}
}
