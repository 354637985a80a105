package account

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
	"bancoctl/internal/controller"
	"bancoctl/internal/ui"
	"bancoctl/internal/ui/prompts"
	"bancoctl/internal/ui/views"
)

func NewSaveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Open a new account or edit an existing one",
		Long: `Open a new account for a person or change the number of an existing
account. The owner of an account cannot be changed after creation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(cmd.Context(), a)
		},
	}
}

func runSave(ctx context.Context, a *app.App) error {
	ctrl := a.Account

	ui.PrintTitle("Account Registration")

	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	if len(ctrl.People()) == 0 {
		pterm.Warning.Println("No people registered yet; register a person first")
		return nil
	}

	edit := false
	if hasAccounts(ctrl) {
		var err error
		edit, err = prompts.PromptConfirm("Edit an existing account?", false)
		if err != nil {
			return err
		}
	}

	if edit {
		personID, acc, err := prompts.PromptNestedAccountSelect("Which account do you want to edit?", ctrl.People())
		if err != nil {
			return err
		}
		ctrl.SelectForEdit(personID, acc)
	} else {
		owner, err := prompts.PromptOwnerSelect(ctrl.People())
		if err != nil {
			return err
		}
		ctrl.SelectForCreate()
		ctrl.SetForm(controller.AccountForm{PersonID: owner.ID})
	}

	form := ctrl.Form()
	number, err := prompts.PromptAccountNumber(form.Number)
	if err != nil {
		return err
	}
	form.Number = number
	ctrl.SetForm(form)

	editing := ctrl.EditingID() != 0
	if err := ctrl.Save(ctx); err != nil {
		return err
	}

	if editing {
		pterm.Success.Println("Account updated successfully!")
	} else {
		pterm.Success.Println("Account opened successfully!")
	}
	return views.RenderPersonAccounts(ctrl.People())
}

func hasAccounts(ctrl *controller.Account) bool {
	for _, p := range ctrl.People() {
		if len(p.Accounts) > 0 {
			return true
		}
	}
	return false
}
