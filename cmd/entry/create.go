package entry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/errhandler"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/prompts"
	"github.com/contaflow/contaflow/internal/ui/views"
	"github.com/contaflow/contaflow/internal/validation"
)

type createFlags struct {
	Date        string
	Description string
	Reference   string
	Lines       []string
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a journal entry",
		Long: `Create a journal entry. With --line flags the entry is created
non-interactively; otherwise the interactive editor opens.
The entry can only be submitted once its lines balance (total debit equals total credit).

Each --line is account-id:debit:credit with an optional :memo, e.g.

  contaflow entry create --date 2026-03-15 --description "Compra de equipo" \
    --line 1101:0:15000 --line 1205:15000:0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var in validation.EntryInput

			if len(flags.Lines) > 0 {
				parsed, err := parseLineFlags(flags.Lines)
				if err != nil {
					return err
				}
				in = validation.EntryInput{
					Date:        flags.Date,
					Description: flags.Description,
					Reference:   flags.Reference,
					Lines:       parsed,
				}
			} else {
				accounts, err := svc.Account.ListPostable(ctx)
				if err != nil {
					return fmt.Errorf("failed to load postable accounts: %w", err)
				}
				if len(accounts) == 0 {
					return fmt.Errorf("no postable accounts exist; create accounts first")
				}

				in, err = prompts.RunEntryEditor(accounts)
				if err != nil {
					if errors.Is(err, prompts.ErrEditorCancelled) {
						pterm.Warning.Println("Entry discarded")
						return nil
					}
					errhandler.HandleError(err)
					return nil
				}
			}

			created, err := svc.Entry.CreateWithLines(ctx, in)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			pterm.Success.Printf("Entry created: %s\n", created.Number)
			return views.RenderEntryDetail(created)
		},
	}

	cmd.Flags().StringVar(&flags.Date, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Description, "description", "", "Entry description")
	cmd.Flags().StringVar(&flags.Reference, "reference", "", "External reference")
	cmd.Flags().StringArrayVar(&flags.Lines, "line", nil, "Line as account-id:debit:credit[:memo] (repeatable)")

	return cmd
}

func parseLineFlags(raw []string) ([]validation.LineInput, error) {
	lines := make([]validation.LineInput, 0, len(raw))
	for i, spec := range raw {
		parts := strings.SplitN(spec, ":", 4)
		if len(parts) < 3 {
			return nil, fmt.Errorf("line %d: expected account-id:debit:credit[:memo], got '%s'", i+1, spec)
		}

		line := validation.LineInput{
			AccountID: strings.TrimSpace(parts[0]),
			Debit:     strings.TrimSpace(parts[1]),
			Credit:    strings.TrimSpace(parts[2]),
		}
		if len(parts) == 4 {
			line.Description = strings.TrimSpace(parts[3])
		}
		lines = append(lines, line)
	}
	return lines, nil
}
