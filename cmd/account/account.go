package account

import (
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/service"
)

// NewAccountCmd groups the chart-of-accounts subcommands.
func NewAccountCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "Manage the chart of accounts",
	}

	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewInfoCmd(svc))
	cmd.AddCommand(NewCreateCmd(svc))
	cmd.AddCommand(NewArchiveCmd(svc))
	cmd.AddCommand(NewDeleteCmd(svc))

	return cmd
}
