package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/views"
)

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show one account in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := svc.Account.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}
			if acc == nil {
				return fmt.Errorf("account %s not found", args[0])
			}

			return views.RenderAccountDetail(acc)
		},
	}
}
