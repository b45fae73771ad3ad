package entry

import (
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/service"
)

// NewEntryCmd groups the journal entry subcommands.
func NewEntryCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entry",
		Aliases: []string{"je", "poliza"},
		Short:   "Manage journal entries (pólizas)",
	}

	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewInfoCmd(svc))
	cmd.AddCommand(NewCreateCmd(svc))
	cmd.AddCommand(NewPostCmd(svc))
	cmd.AddCommand(NewReverseCmd(svc))

	return cmd
}
