package views

import (
	"github.com/pterm/pterm"

	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/ui"
)

// RenderReport prints a server-computed report as a titled table. The
// client does no aggregation of its own; rows come back ready to show.
func RenderReport(report *model.Report) error {
	pterm.Println()
	ui.PrintL1Title("%s", report.Title)

	if report.Period != "" {
		pterm.Info.Printf("Period: %s\n", report.Period)
	}

	if len(report.Rows) == 0 {
		pterm.Warning.Println("No data for this report")
		return nil
	}

	tableData := pterm.TableData{report.Columns}
	for _, row := range report.Rows {
		tableData = append(tableData, row)
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render()
}
