package entry

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/errhandler"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/prompts"
)

func NewReverseCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <id>",
		Short: "Create the reversing entry for a posted entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := prompts.PromptConfirm("Reverse this entry?", false)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}
			if !confirm {
				pterm.Info.Println("Nothing reversed")
				return nil
			}

			reversal, err := svc.Entry.Reverse(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to reverse entry: %w", err)
			}

			pterm.Success.Printf("Reversing entry created: %s\n", reversal.Number)
			return nil
		},
	}
}
