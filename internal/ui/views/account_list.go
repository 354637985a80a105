package views

import (
	"strings"

	"github.com/pterm/pterm"

	"bancoctl/internal/format"
	"bancoctl/internal/model"
)

// RenderPersonAccounts prints the joined person+accounts table.
func RenderPersonAccounts(people []model.PersonWithAccounts) error {
	if len(people) == 0 {
		pterm.Warning.Println("No people registered")
		return nil
	}

	tableData := pterm.TableData{{"Name", "CPF", "Accounts"}}
	for _, p := range people {
		var numbers []string
		for _, acc := range p.Accounts {
			numbers = append(numbers, acc.Number)
		}

		accountsCell := "no accounts registered"
		if len(numbers) > 0 {
			accountsCell = strings.Join(numbers, ", ")
		}

		tableData = append(tableData, []string{
			format.CapitalizeWords(p.Name),
			format.MaskCPF(p.CPF),
			accountsCell,
		})
	}

	pterm.DefaultSection.Printf("People and Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d people\n", len(people))
	return nil
}
