package prompts

import "github.com/charmbracelet/huh"

// PromptLine asks for one free-form console entry line. An empty line means
// "go back", so no validator runs here; parsing happens in the caller.
func PromptLine(title, helpText string) (string, error) {
	var line string

	err := huh.NewInput().
		Title(title).
		Description(helpText).
		Value(&line).
		Run()

	return line, err
}

func PromptTransactionEntry() (string, error) {
	return PromptLine(
		"Transaction <Date> <Account> <Type> <Amount>:",
		"e.g. 20250401 AC001 D 150.00 (leave blank to go back)",
	)
}

func PromptRuleEntry() (string, error) {
	return PromptLine(
		"Interest rule <Date> <RuleId> <Rate in %>:",
		"e.g. 20250401 RULE03 2.20 (leave blank to go back)",
	)
}

func PromptStatementEntry() (string, error) {
	return PromptLine(
		"Statement <Account> <YYYYMM>:",
		"e.g. AC001 202504 (leave blank to go back)",
	)
}
