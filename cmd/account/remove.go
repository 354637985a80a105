package account

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
	"bancoctl/internal/ui/prompts"
	"bancoctl/internal/ui/views"
)

func NewRemoveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl := a.Account

			if err := ctrl.Load(ctx); err != nil {
				return err
			}

			_, acc, err := prompts.PromptNestedAccountSelect("Which account do you want to remove?", ctrl.People())
			if err != nil {
				return err
			}

			removed, err := ctrl.Remove(ctx, acc.ID)
			if err != nil {
				return err
			}
			if !removed {
				pterm.Info.Println("Removal cancelled")
				return nil
			}

			// The list below comes from the local filter, not a re-fetch.
			pterm.Success.Println("Account removed successfully!")
			return views.RenderPersonAccounts(ctrl.People())
		},
	}
}
