package views

import (
	"github.com/pterm/pterm"

	"bancoctl/internal/format"
	"bancoctl/internal/model"
)

// RenderStatement prints the account statement, newest first, and the
// current balance. Rows are colored by the sign of the amount the
// backend returned; the client itself never signs values.
func RenderStatement(st model.Statement) error {
	pterm.DefaultSection.Printf("Account Statement")

	if len(st.Movements) == 0 {
		pterm.Warning.Println("No movements for this account")
	} else {
		tableData := pterm.TableData{{"Date", "Type", "Amount"}}
		for _, mov := range st.Movements {
			amount := format.Amount(mov.Amount)
			if mov.Amount < 0 {
				amount = pterm.Red(amount)
			} else {
				amount = pterm.Green(amount)
			}
			tableData = append(tableData, []string{
				format.DateTime(mov.Date),
				mov.Type,
				amount,
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
			return err
		}
	}

	pterm.Info.Printf("Current balance: %s\n", format.Amount(st.Balance))
	return nil
}
