package movement

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
	"bancoctl/internal/controller"
	"bancoctl/internal/ui/prompts"
	"bancoctl/internal/ui/views"
)

func NewAddCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Record a deposit or a withdrawal",
		Long: `Record a deposit or a withdrawal on an account. The amount is always
entered positive; the movement type carries the direction.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context(), a)
		},
	}
}

func runAdd(ctx context.Context, a *app.App) error {
	ctrl := a.Movement

	ok, err := chooseAccount(ctx, ctrl)
	if err != nil || !ok {
		return err
	}
	if err := views.RenderStatement(ctrl.Statement()); err != nil {
		return err
	}

	form := ctrl.Form()
	amount, err := prompts.PromptAmount(form.Amount)
	if err != nil {
		return err
	}
	movementType, err := prompts.PromptMovementType()
	if err != nil {
		return err
	}
	ctrl.SetForm(controller.MovementForm{Amount: amount, Type: movementType})

	if err := ctrl.Save(ctx); err != nil {
		return err
	}

	pterm.Success.Println("Movement recorded successfully!")
	return views.RenderStatement(ctrl.Statement())
}
