package crm

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/service"
)

func newStagesCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List the sales pipeline stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			stages, err := svc.CRM.ListStages(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get stages: %w", err)
			}

			tableData := pterm.TableData{{"#", "Name", "Probability", "Closed"}}
			for _, stage := range stages {
				closed := "-"
				if stage.IsClosed {
					closed = "yes"
				}
				tableData = append(tableData, []string{
					fmt.Sprintf("%d", stage.Position),
					stage.Name,
					fmt.Sprintf("%d%%", stage.Probability),
					closed,
				})
			}

			pterm.DefaultSection.Printf("Pipeline Stages")
			return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		},
	}
}
