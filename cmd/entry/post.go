package entry

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/errhandler"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/prompts"
)

func NewPostCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "post <id>",
		Short: "Post a draft entry to the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := prompts.PromptConfirm("Post this entry? Posted entries cannot be edited.", false)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}
			if !confirm {
				pterm.Info.Println("Nothing posted")
				return nil
			}

			posted, err := svc.Entry.Post(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to post entry: %w", err)
			}

			pterm.Success.Printf("Entry posted: %s\n", posted.Number)
			return nil
		},
	}
}
