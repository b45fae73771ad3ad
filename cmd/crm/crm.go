package crm

import (
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/service"
)

// NewCRMCmd groups the lead and campaign subcommands.
func NewCRMCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crm",
		Short: "Manage leads and campaigns",
	}

	cmd.AddCommand(newLeadCmd(svc))
	cmd.AddCommand(newCampaignCmd(svc))
	cmd.AddCommand(newStagesCmd(svc))

	return cmd
}
