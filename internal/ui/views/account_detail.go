package views

import (
	"github.com/pterm/pterm"

	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/ui"
)

func RenderAccountDetail(acc *model.Account) error {
	parent := "(root)"
	if acc.ParentID != nil {
		parent = *acc.ParentID
	}

	postable := "no"
	if acc.IsPostable {
		postable = "yes"
	}

	pterm.Println()
	ui.PrintL2Title("Account %s", acc.Code)

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Code", acc.Code},
		{"Name", acc.Name},
		{"Type", colorByType(acc.Type, acc.Type.Label())},
		{"Nature", string(acc.Nature)},
		{"Level", pterm.Sprintf("%d", acc.Level)},
		{"Parent", parent},
		{"Postable", postable},
		{"Status", statusBadge(acc.Status)},
		{"Currency", acc.Currency},
	}
	if acc.Description != "" {
		infoData = append(infoData, []string{"Description", acc.Description})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
