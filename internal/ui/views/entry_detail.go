package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/contaflow/contaflow/internal/balance"
	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/ui"
)

func RenderEntryDetail(entry *model.JournalEntry) error {
	pterm.Println()
	ui.PrintL2Title("Entry Info")

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Number", entry.Number},
		{"Date", entry.Date},
		{"Description", entry.Description},
		{"Status", entryStatusBadge(entry.Status)},
	}
	if entry.Reference != "" {
		infoData = append(infoData, []string{"Reference", entry.Reference})
	}
	if entry.ReversalOfID != "" {
		infoData = append(infoData, []string{"Reverses", entry.ReversalOfID})
	}
	if entry.PostedAt != nil {
		infoData = append(infoData, []string{"Posted At", entry.PostedAt.Format("2006-01-02 15:04")})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Lines")

	linesData := pterm.TableData{
		{"Account", "Debit", "Credit", "Memo"},
	}

	for _, line := range entry.Lines {
		accountName := line.AccountID
		if line.Account != nil {
			accountName = fmt.Sprintf("%s %s", line.Account.Code, line.Account.Name)
		}

		memo := line.Description
		if memo == "" {
			memo = "-"
		}

		linesData = append(linesData, []string{
			accountName,
			line.Debit.StringFixed(2),
			line.Credit.StringFixed(2),
			memo,
		})
	}

	linesData = append(linesData, []string{
		pterm.Bold.Sprint("Total"),
		pterm.Bold.Sprint(entry.TotalDebit.StringFixed(2)),
		pterm.Bold.Sprint(entry.TotalCredit.StringFixed(2)),
		"",
	})

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(linesData).
		Render(); err != nil {
		return err
	}

	diff := entry.TotalDebit.Sub(entry.TotalCredit)
	ui.PrintBalanceStatus(
		entry.TotalDebit.StringFixed(2),
		entry.TotalCredit.StringFixed(2),
		diff.Abs().StringFixed(2),
		diff.Abs().LessThan(balance.Tolerance),
	)

	return nil
}
