package views

import (
	"github.com/pterm/pterm"

	"bancoctl/internal/format"
	"bancoctl/internal/model"
)

// RenderPersonList prints the people table with the display projections
// applied: capitalized names and masked CPFs. The wire values stay
// untouched.
func RenderPersonList(people []model.Person) error {
	if len(people) == 0 {
		pterm.Warning.Println("No people registered")
		return nil
	}

	tableData := pterm.TableData{{"Name", "CPF", "Address"}}
	for _, p := range people {
		tableData = append(tableData, []string{
			format.CapitalizeWords(p.Name),
			format.MaskCPF(p.CPF),
			p.Address,
		})
	}

	pterm.DefaultSection.Printf("People")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d people\n", len(people))
	return nil
}
