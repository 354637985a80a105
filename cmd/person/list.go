package person

import (
	"github.com/spf13/cobra"

	"bancoctl/internal/app"
	"bancoctl/internal/ui/views"
)

func NewListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered people",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Person.Load(cmd.Context()); err != nil {
				return err
			}
			return views.RenderPersonList(a.Person.People())
		},
	}
}
