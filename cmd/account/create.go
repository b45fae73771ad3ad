package account

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/errhandler"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/prompts"
	"github.com/contaflow/contaflow/internal/validation"
)

type createFlags struct {
	Code        string
	Name        string
	Type        string
	Nature      string
	Level       int
	ParentID    string
	Postable    bool
	Currency    string
	Description string
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long: `Create an account. With --code and --name the account is created
from the flags; otherwise the interactive form walks through every field.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var in validation.AccountInput

			if flags.Code != "" && flags.Name != "" {
				in = validation.AccountInput{
					Code:        flags.Code,
					Name:        flags.Name,
					Type:        flags.Type,
					Nature:      flags.Nature,
					Level:       flags.Level,
					ParentID:    flags.ParentID,
					IsPostable:  flags.Postable,
					Currency:    flags.Currency,
					Description: flags.Description,
				}
			} else {
				existing, err := svc.Account.List(ctx, "", 1)
				if err != nil {
					return fmt.Errorf("failed to load existing accounts: %w", err)
				}

				var promptErr error
				in, promptErr = prompts.PromptAccountForm(existing, svc.Account.DefaultCurrency())
				if promptErr != nil {
					errhandler.HandleError(promptErr)
					return nil
				}
			}

			acc, err := svc.Account.Create(ctx, in)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			pterm.Success.Printf("Account created: %s %s\n", acc.Code, acc.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Code, "code", "", "Account code")
	cmd.Flags().StringVar(&flags.Name, "name", "", "Account name")
	cmd.Flags().StringVar(&flags.Type, "type", "asset", "Account type (asset, liability, equity, revenue, expense)")
	cmd.Flags().StringVar(&flags.Nature, "nature", "debit", "Account nature (debit, credit)")
	cmd.Flags().IntVar(&flags.Level, "level", 1, "Hierarchy level (1-10)")
	cmd.Flags().StringVar(&flags.ParentID, "parent", "", "Parent account id")
	cmd.Flags().BoolVar(&flags.Postable, "postable", true, "Whether journal lines may post to this account")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (default from config)")
	cmd.Flags().StringVar(&flags.Description, "description", "", "Description")

	return cmd
}
