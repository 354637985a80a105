package movement

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
	"bancoctl/internal/controller"
	"bancoctl/internal/ui"
	"bancoctl/internal/ui/prompts"
)

func NewMovementCmd(a *app.App) *cobra.Command {
	movementCmd := &cobra.Command{
		Use:   "movement",
		Short: "View account statements and record deposits and withdrawals",
		Long: `View account statements and record deposits and withdrawals.
Movements are append-only: they can never be edited or removed.`,
	}

	movementCmd.AddCommand(NewStatementCmd(a))
	movementCmd.AddCommand(NewAddCmd(a))

	return movementCmd
}

// chooseAccount walks the person→account cascade. It reports ok=false
// when there is nothing to select, which is not an error.
func chooseAccount(ctx context.Context, ctrl *controller.Movement) (bool, error) {
	if err := ctrl.Load(ctx); err != nil {
		return false, err
	}
	if len(ctrl.People()) == 0 {
		pterm.Warning.Println("No people registered yet; register a person first")
		return false, nil
	}

	person, err := prompts.PromptPersonRefSelect(ctrl.People())
	if err != nil {
		return false, err
	}
	if err := ctrl.SelectPerson(ctx, person.ID); err != nil {
		return false, err
	}

	if len(ctrl.Accounts()) == 0 {
		pterm.Warning.Printf("%s has no accounts yet\n", person.Name)
		return false, nil
	}

	acc, err := prompts.PromptAccountSelect(ctrl.Accounts())
	if err != nil {
		return false, err
	}
	if err := ctrl.SelectAccount(ctx, acc.ID); err != nil {
		return false, err
	}

	ui.Separator()
	return true, nil
}
