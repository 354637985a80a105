package movement

import (
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
	"bancoctl/internal/ui/views"
)

func NewStatementCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "statement",
		Short: "Show the statement and balance of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := chooseAccount(cmd.Context(), a.Movement)
			if err != nil || !ok {
				return err
			}
			return views.RenderStatement(a.Movement.Statement())
		},
	}
}
