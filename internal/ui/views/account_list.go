package views

import (
	"github.com/pterm/pterm"

	"github.com/contaflow/contaflow/internal/model"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []model.Account) error {
	headers := []string{"Code", "Name", "Type", "Nature", "Status", "Postable"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		postable := "-"
		if acc.IsPostable {
			postable = "yes"
		}

		row := []string{
			colorByType(acc.Type, acc.Code),
			colorByType(acc.Type, acc.Name),
			colorByType(acc.Type, acc.Type.Label()),
			string(acc.Nature),
			statusBadge(acc.Status),
			postable,
		}
		tableData = append(tableData, row)
	}

	pterm.DefaultSection.Printf("Chart of Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}

// colorByType keys the row color off the account type. Assets and
// revenue render green, liabilities and expenses red, equity gray.
func colorByType(t model.AccountType, text string) string {
	switch t {
	case model.AccountTypeAsset, model.AccountTypeRevenue:
		return pterm.Green(text)
	case model.AccountTypeLiability, model.AccountTypeExpense:
		return pterm.Red(text)
	case model.AccountTypeEquity:
		return pterm.Gray(text)
	}
	return text
}

func statusBadge(s model.AccountStatus) string {
	switch s {
	case model.AccountStatusActive:
		return pterm.Green(s.Label())
	case model.AccountStatusInactive:
		return pterm.Yellow(s.Label())
	case model.AccountStatusArchived:
		return pterm.Gray(s.Label())
	}
	return string(s)
}
