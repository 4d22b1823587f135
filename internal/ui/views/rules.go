package views

import (
	"github.com/awesomegic/teller/internal/model"
	"github.com/pterm/pterm"
)

type RuleListView struct{}

func NewRuleListView() *RuleListView {
	return &RuleListView{}
}

func (v *RuleListView) Render(rules []*model.InterestRule) error {
	if len(rules) == 0 {
		pterm.Warning.Println("No interest rules defined")
		return nil
	}

	pterm.DefaultSection.Println("Interest rules")

	tableData := pterm.TableData{
		{"Date", "RuleId", "Rate (%)"},
	}

	for _, rule := range rules {
		tableData = append(tableData, []string{
			model.FormatDate(rule.Date),
			rule.RuleID,
			rule.Rate.StringFixed(2),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d rules\n", len(rules))
	return nil
}
