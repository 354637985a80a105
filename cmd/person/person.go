package person

import (
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
)

func NewPersonCmd(a *app.App) *cobra.Command {
	personCmd := &cobra.Command{
		Use:   "person",
		Short: "Register, edit, list and remove people",
		Long:  `Register, edit, list and remove people.`,
	}

	personCmd.AddCommand(NewListCmd(a))
	personCmd.AddCommand(NewSaveCmd(a))
	personCmd.AddCommand(NewRemoveCmd(a))

	return personCmd
}
