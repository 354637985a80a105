package account

import (
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
)

func NewAccountCmd(a *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Open, edit, list and remove accounts",
		Long:  `Open, edit, list and remove accounts. Every account belongs to one person.`,
	}

	accountCmd.AddCommand(NewListCmd(a))
	accountCmd.AddCommand(NewSaveCmd(a))
	accountCmd.AddCommand(NewRemoveCmd(a))

	return accountCmd
}
