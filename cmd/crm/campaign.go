package crm

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/errhandler"
	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/prompts"
	"github.com/contaflow/contaflow/internal/ui/views"
)

func newCampaignCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Manage campaigns",
	}

	cmd.AddCommand(newCampaignListCmd(svc))
	cmd.AddCommand(newCampaignCreateCmd(svc))
	cmd.AddCommand(newCampaignUpdateCmd(svc))
	cmd.AddCommand(newCampaignDeleteCmd(svc))
	cmd.AddCommand(newCampaignLinkCmd(svc))
	cmd.AddCommand(newCampaignUnlinkCmd(svc))

	return cmd
}

func newCampaignListCmd(svc *service.Service) *cobra.Command {
	var status string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			campaigns, err := svc.CRM.ListCampaigns(cmd.Context(), status, page)
			if err != nil {
				return fmt.Errorf("failed to get campaigns: %w", err)
			}

			return views.NewCampaignListView().Render(campaigns)
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter campaigns by status (planned, active, completed, cancelled)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")

	return cmd
}

func newCampaignCreateCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a campaign interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := prompts.PromptCampaignForm()
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			campaign, err := svc.CRM.CreateCampaign(cmd.Context(), in)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			pterm.Success.Printf("Campaign created: %s\n", campaign.Name)
			return nil
		},
	}
}

func newCampaignUpdateCmd(svc *service.Service) *cobra.Command {
	var name, status, endDate string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a campaign's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			campaign, err := svc.CRM.GetCampaign(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get campaign: %w", err)
			}
			if campaign == nil {
				return fmt.Errorf("campaign %s not found", args[0])
			}

			if name != "" {
				campaign.Name = name
			}
			if status != "" {
				campaign.Status = model.CampaignStatus(status)
			}
			if endDate != "" {
				campaign.EndDate = endDate
			}

			updated, err := svc.CRM.UpdateCampaign(ctx, *campaign)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			pterm.Success.Printf("Campaign updated: %s\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&status, "status", "", "New status (planned, active, completed, cancelled)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "New end date (YYYY-MM-DD)")

	return cmd
}

func newCampaignDeleteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := prompts.PromptConfirm("Delete this campaign?", false)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}
			if !confirm {
				pterm.Info.Println("Nothing deleted")
				return nil
			}

			if err := svc.CRM.DeleteCampaign(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete campaign: %w", err)
			}

			pterm.Success.Println("Campaign deleted")
			return nil
		},
	}
}

func newCampaignLinkCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "link [campaign-id] [lead-id]",
		Short: "Link a lead to a campaign",
		Long:  `Link a lead to a campaign. Without arguments, both are picked interactively.`,
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			campaignID, leadID, err := resolveLinkPair(ctx, svc, args)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			if err := svc.CRM.LinkLead(ctx, campaignID, leadID); err != nil {
				return fmt.Errorf("failed to link lead: %w", err)
			}

			pterm.Success.Println("Lead linked to campaign")
			return nil
		},
	}
}

func resolveLinkPair(ctx context.Context, svc *service.Service, args []string) (string, string, error) {
	var campaignID, leadID string

	if len(args) > 0 {
		campaignID = args[0]
	} else {
		campaigns, err := svc.CRM.ListCampaigns(ctx, "", 1)
		if err != nil {
			return "", "", fmt.Errorf("failed to load campaigns: %w", err)
		}
		campaignID, err = prompts.PromptCampaignSelection(campaigns, "Which campaign?")
		if err != nil {
			return "", "", err
		}
	}

	if len(args) > 1 {
		leadID = args[1]
	} else {
		leads, err := svc.CRM.ListLeads(ctx, "", 1)
		if err != nil {
			return "", "", fmt.Errorf("failed to load leads: %w", err)
		}
		leadID, err = prompts.PromptLeadSelection(leads, "Which lead?")
		if err != nil {
			return "", "", err
		}
	}

	return campaignID, leadID, nil
}

func newCampaignUnlinkCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <campaign-id> <lead-id>",
		Short: "Unlink a lead from a campaign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.CRM.UnlinkLead(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to unlink lead: %w", err)
			}

			pterm.Success.Println("Lead unlinked from campaign")
			return nil
		},
	}
}
