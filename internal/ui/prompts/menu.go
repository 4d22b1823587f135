package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

const (
	MenuInputTransactions = "Input transactions"
	MenuDefineRules       = "Define interest rules"
	MenuPrintStatement    = "Print statement"
	MenuQuit              = "Quit"
)

// PromptMainMenu shows the top-level menu and returns the chosen action.
func PromptMainMenu(bankName string) (string, error) {
	var choice string

	err := huh.NewSelect[string]().
		Title(fmt.Sprintf("Welcome to %s! What would you like to do?", bankName)).
		Options(huh.NewOptions(
			MenuInputTransactions,
			MenuDefineRules,
			MenuPrintStatement,
			MenuQuit,
		)...).
		Value(&choice).
		Run()

	return choice, err
}
