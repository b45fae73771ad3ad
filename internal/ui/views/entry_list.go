package views

import (
	"github.com/pterm/pterm"

	"github.com/contaflow/contaflow/internal/model"
)

type EntryListView struct{}

func NewEntryListView() *EntryListView {
	return &EntryListView{}
}

func (v *EntryListView) Render(entries []model.JournalEntry) error {
	headers := []string{"Number", "Date", "Description", "Debit", "Credit", "Status"}
	tableData := pterm.TableData{headers}

	for _, entry := range entries {
		tableData = append(tableData, []string{
			entry.Number,
			entry.Date,
			truncate(entry.Description, 40),
			entry.TotalDebit.StringFixed(2),
			entry.TotalCredit.StringFixed(2),
			entryStatusBadge(entry.Status),
		})
	}

	pterm.DefaultSection.Printf("Journal Entries")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d entries\n", len(entries))

	return nil
}

func entryStatusBadge(s model.EntryStatus) string {
	switch s {
	case model.EntryStatusDraft:
		return pterm.Yellow(s.Label())
	case model.EntryStatusPending:
		return pterm.Cyan(s.Label())
	case model.EntryStatusApproved:
		return pterm.Blue(s.Label())
	case model.EntryStatusPosted:
		return pterm.Green(s.Label())
	case model.EntryStatusReversed:
		return pterm.Gray(s.Label())
	}
	return string(s)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
