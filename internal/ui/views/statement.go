package views

import (
	"github.com/awesomegic/teller/internal/model"
	"github.com/pterm/pterm"
)

type StatementView struct {
	withBalance bool
}

func NewStatementView(withBalance bool) *StatementView {
	return &StatementView{withBalance: withBalance}
}

func (v *StatementView) Render(accountNumber string, lines []model.StatementLine) error {
	pterm.DefaultSection.Printf("Account: %s", accountNumber)

	if len(lines) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	header := []string{"Date", "Txn Id", "Type", "Amount"}
	if v.withBalance {
		header = append(header, "Balance")
	}
	tableData := pterm.TableData{header}

	for _, line := range lines {
		amount := line.Amount.StringFixed(2)

		var coloredType, coloredAmount string
		switch line.Type {
		case model.TypeDeposit:
			coloredType = pterm.Green(line.Type.Code())
			coloredAmount = pterm.Green(amount)
		case model.TypeWithdrawal:
			coloredType = pterm.Red(line.Type.Code())
			coloredAmount = pterm.Red(amount)
		case model.TypeInterest:
			coloredType = pterm.Blue(line.Type.Code())
			coloredAmount = pterm.Blue(amount)
		default:
			coloredType = line.Type.Code()
			coloredAmount = amount
		}

		row := []string{
			model.FormatDate(line.Date),
			line.TxnID,
			coloredType,
			coloredAmount,
		}
		if v.withBalance {
			balance := ""
			if line.Balance != nil {
				balance = line.Balance.StringFixed(2)
			}
			row = append(row, balance)
		}

		tableData = append(tableData, row)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(lines))
	return nil
}
