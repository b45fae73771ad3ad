package entry

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/views"
)

type listFlags struct {
	Status string
	Page   int
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := svc.Entry.List(cmd.Context(), flags.Status, flags.Page)
			if err != nil {
				return fmt.Errorf("failed to get entries: %w", err)
			}

			return views.NewEntryListView().Render(entries)
		},
	}

	cmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Filter entries by status (draft, pending, approved, posted, reversed)")
	cmd.Flags().IntVarP(&flags.Page, "page", "p", 1, "Page number")

	return cmd
}
