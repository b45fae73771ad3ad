package account

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/errhandler"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/store"
	"github.com/contaflow/contaflow/internal/ui/prompts"
)

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account without movements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := prompts.PromptConfirm("Delete this account? This cannot be undone.", false)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}
			if !confirm {
				pterm.Info.Println("Nothing deleted")
				return nil
			}

			if err := svc.Account.Delete(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, store.ErrConflict) {
					return fmt.Errorf("account has movements and cannot be deleted; use 'account archive' instead")
				}
				return fmt.Errorf("failed to delete account: %w", err)
			}

			pterm.Success.Println("Account deleted")
			return nil
		},
	}
}
