package crm

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/errhandler"
	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/prompts"
	"github.com/contaflow/contaflow/internal/ui/views"
)

func newLeadCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Manage leads",
	}

	cmd.AddCommand(newLeadListCmd(svc))
	cmd.AddCommand(newLeadCreateCmd(svc))
	cmd.AddCommand(newLeadUpdateCmd(svc))
	cmd.AddCommand(newLeadDeleteCmd(svc))

	return cmd
}

func newLeadListCmd(svc *service.Service) *cobra.Command {
	var status string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			leads, err := svc.CRM.ListLeads(cmd.Context(), status, page)
			if err != nil {
				return fmt.Errorf("failed to get leads: %w", err)
			}

			return views.NewLeadListView().Render(leads)
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter leads by status (new, contacted, qualified, unqualified, converted)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")

	return cmd
}

func newLeadCreateCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a lead interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			stages, err := svc.CRM.ListStages(ctx)
			if err != nil {
				return fmt.Errorf("failed to load pipeline stages: %w", err)
			}

			in, stageID, err := prompts.PromptLeadForm(stages)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			lead, err := svc.CRM.CreateLead(ctx, in, stageID, "")
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			pterm.Success.Printf("Lead created: %s\n", lead.Name)
			return nil
		},
	}
}

func newLeadUpdateCmd(svc *service.Service) *cobra.Command {
	var name, email, status, rating string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a lead's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			lead, err := svc.CRM.GetLead(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get lead: %w", err)
			}
			if lead == nil {
				return fmt.Errorf("lead %s not found", args[0])
			}

			if name != "" {
				lead.Name = name
			}
			if email != "" {
				lead.Email = email
			}
			if status != "" {
				lead.Status = model.LeadStatus(status)
			}
			if rating != "" {
				lead.Rating = model.LeadRating(rating)
			}

			updated, err := svc.CRM.UpdateLead(ctx, *lead)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			pterm.Success.Printf("Lead updated: %s\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.Flags().StringVar(&status, "status", "", "New status (new, contacted, qualified, unqualified, converted)")
	cmd.Flags().StringVar(&rating, "rating", "", "New rating (hot, warm, cold)")

	return cmd
}

func newLeadDeleteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, err := prompts.PromptConfirm("Delete this lead?", false)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}
			if !confirm {
				pterm.Info.Println("Nothing deleted")
				return nil
			}

			if err := svc.CRM.DeleteLead(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete lead: %w", err)
			}

			pterm.Success.Println("Lead deleted")
			return nil
		},
	}
}
