package account

import (
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
	"bancoctl/internal/ui/views"
)

func NewListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all people with their accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Account.Load(cmd.Context()); err != nil {
				return err
			}
			return views.RenderPersonAccounts(a.Account.People())
		},
	}
}
