package entry

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/views"
)

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show one journal entry with its lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := svc.Entry.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get entry: %w", err)
			}
			if e == nil {
				return fmt.Errorf("entry %s not found", args[0])
			}

			return views.RenderEntryDetail(e)
		},
	}
}
