package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/views"
)

type listFlags struct {
	Status string
	Page   int
	Tree   bool
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts in the chart of accounts",
		Long: `List the chart of accounts from the backend.
You can filter by status (active, inactive, archived) and page through results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := svc.Account.List(cmd.Context(), flags.Status, flags.Page)
			if err != nil {
				return fmt.Errorf("failed to get accounts: %w", err)
			}

			if flags.Tree {
				return views.RenderAccountTree(accounts)
			}
			return views.NewAccountListView().Render(accounts)
		},
	}

	cmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Filter accounts by status (active, inactive, archived)")
	cmd.Flags().IntVarP(&flags.Page, "page", "p", 1, "Page number")
	cmd.Flags().BoolVarP(&flags.Tree, "tree", "t", false, "Show the accounts as a hierarchy")

	return cmd
}
