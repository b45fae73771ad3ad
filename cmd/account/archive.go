package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/errhandler"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/prompts"
)

func NewArchiveCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive an account (soft retire)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := prompts.PromptConfirm("Archive this account?", false)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}
			if !confirm {
				pterm.Info.Println("Nothing archived")
				return nil
			}

			acc, err := svc.Account.Archive(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to archive account: %w", err)
			}

			pterm.Success.Printf("Account archived: %s %s\n", acc.Code, acc.Name)
			return nil
		},
	}
}
