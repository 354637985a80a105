package person

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
		Short: "Remove a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl := a.Person

			if err := ctrl.Load(ctx); err != nil {
				return err
			}
			if len(ctrl.People()) == 0 {
				pterm.Warning.Println("No people registered")
				return nil
			}

			selected, err := prompts.PromptPersonSelect("Which person do you want to remove?", ctrl.People())
			if err != nil {
				return err
			}

			removed, err := ctrl.Remove(ctx, selected.ID)
			if err != nil {
				return err
			}
			if !removed {
				pterm.Info.Println("Removal cancelled")
				return nil
			}

			pterm.Success.Println("Person removed successfully!")
			return views.RenderPersonList(ctrl.People())
		},
	}
}
