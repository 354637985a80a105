package person

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
	"bancoctl/internal/ui"
	"bancoctl/internal/ui/prompts"
	"bancoctl/internal/ui/views"
)

func NewSaveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Register a new person or edit an existing one",
		Long: `Register a new person or edit an existing one.
The CPF may be typed with or without the mask; it is stored without it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd.Context(), a)
		},
	}
}

func runSave(ctx context.Context, a *app.App) error {
	ctrl := a.Person

	ui.PrintTitle("Person Registration")

	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	if len(ctrl.People()) > 0 {
		selected, edit, err := prompts.PromptPersonMode(ctrl.People())
		if err != nil {
			return err
		}
		if edit {
			ctrl.SelectForEdit(selected)
		} else {
			ctrl.SelectForCreate()
		}
	}

	form, err := prompts.PromptPersonForm(ctrl.Form())
	if err != nil {
		return err
	}
	ctrl.SetForm(form)

	editing := ctrl.EditingID() != 0
	if err := ctrl.Save(ctx); err != nil {
		return err
	}

	if editing {
		pterm.Success.Println("Person updated successfully!")
	} else {
		pterm.Success.Println("Person registered successfully!")
	}
	return views.RenderPersonList(ctrl.People())
}
