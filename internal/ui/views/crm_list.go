package views

import (
	"github.com/pterm/pterm"

	"github.com/contaflow/contaflow/internal/model"
)

type LeadListView struct{}

func NewLeadListView() *LeadListView {
	return &LeadListView{}
}

func (v *LeadListView) Render(leads []model.Lead) error {
	headers := []string{"Name", "Company", "Email", "Status", "Rating", "Est. Value"}
	tableData := pterm.TableData{headers}

	for _, lead := range leads {
		tableData = append(tableData, []string{
			lead.Name,
			lead.Company,
			lead.Email,
			leadStatusBadge(lead.Status),
			ratingBadge(lead.Rating),
			lead.EstimatedValue.StringFixed(2),
		})
	}

	pterm.DefaultSection.Printf("Leads")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d leads\n", len(leads))

	return nil
}

type CampaignListView struct{}

func NewCampaignListView() *CampaignListView {
	return &CampaignListView{}
}

func (v *CampaignListView) Render(campaigns []model.Campaign) error {
	headers := []string{"Name", "Type", "Status", "Start", "End", "Budget"}
	tableData := pterm.TableData{headers}

	for _, c := range campaigns {
		tableData = append(tableData, []string{
			c.Name,
			c.Type.Label(),
			campaignStatusBadge(c.Status),
			c.StartDate,
			c.EndDate,
			c.Budget.StringFixed(2),
		})
	}

	pterm.DefaultSection.Printf("Campaigns")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d campaigns\n", len(campaigns))

	return nil
}

func leadStatusBadge(s model.LeadStatus) string {
	switch s {
	case model.LeadStatusNew:
		return pterm.Cyan(s.Label())
	case model.LeadStatusContacted:
		return pterm.Blue(s.Label())
	case model.LeadStatusQualified:
		return pterm.Green(s.Label())
	case model.LeadStatusUnqualified:
		return pterm.Gray(s.Label())
	case model.LeadStatusConverted:
		return pterm.Magenta(s.Label())
	}
	return string(s)
}

func ratingBadge(r model.LeadRating) string {
	switch r {
	case model.LeadRatingHot:
		return pterm.Red("Hot")
	case model.LeadRatingWarm:
		return pterm.Yellow("Warm")
	case model.LeadRatingCold:
		return pterm.Blue("Cold")
	}
	return string(r)
}

func campaignStatusBadge(s model.CampaignStatus) string {
	switch s {
	case model.CampaignStatusPlanned:
		return pterm.Cyan("Planned")
	case model.CampaignStatusActive:
		return pterm.Green("Active")
	case model.CampaignStatusCompleted:
		return pterm.Gray("Completed")
	case model.CampaignStatusCancelled:
		return pterm.Red("Cancelled")
	}
	return string(s)
}
