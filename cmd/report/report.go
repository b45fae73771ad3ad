package report

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/service"
	"github.com/contaflow/contaflow/internal/ui/views"
)

type reportFlags struct {
	Period    string
	AccountID string
}

// NewReportCmd fetches and renders one of the server-computed reports.
func NewReportCmd(svc *service.Service) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Show a financial report",
		Long: `Show one of the financial reports computed by the backend:
  balance-general        Balance General
  estado-resultados      Estado de Resultados
  balanza-comprobacion   Balanza de Comprobación
  libro-diario           Libro Diario
  libro-mayor            Libro Mayor`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listReports()
			}

			name := model.ReportName(strings.ToLower(args[0]))
			if !name.Valid() {
				return fmt.Errorf("unknown report '%s'; run 'report' without arguments to see the available reports", args[0])
			}

			if name == model.ReportLibroMayor && flags.AccountID == "" {
				return fmt.Errorf("libro-mayor requires --account")
			}

			rep, err := svc.Report.Get(cmd.Context(), name, flags.Period, flags.AccountID)
			if err != nil {
				return fmt.Errorf("failed to get report: %w", err)
			}

			return views.RenderReport(rep)
		},
	}

	cmd.Flags().StringVarP(&flags.Period, "period", "p", "", "Fiscal period (YYYY-MM)")
	cmd.Flags().StringVarP(&flags.AccountID, "account", "a", "", "Account id (required for libro-mayor)")

	return cmd
}

func listReports() error {
	tableData := pterm.TableData{{"Name", "Title"}}
	for _, name := range model.ReportNames {
		tableData = append(tableData, []string{string(name), name.Title()})
	}

	pterm.DefaultSection.Printf("Available Reports")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
