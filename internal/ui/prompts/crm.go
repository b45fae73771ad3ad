package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/validation"
)

// PromptLeadForm collects the lead fields plus an optional pipeline
// stage pick.
func PromptLeadForm(stages []model.PipelineStage) (validation.LeadInput, string, error) {
	var in validation.LeadInput

	name, err := PromptInput("Lead name:", "", validation.ValidateRequired("name"))
	if err != nil {
		return in, "", err
	}
	in.Name = name

	email, err := PromptInput("Email (optional):", "", nil)
	if err != nil {
		return in, "", err
	}
	in.Email = email

	status, err := PromptSelect("Status:", []huh.Option[string]{
		huh.NewOption("New", string(model.LeadStatusNew)),
		huh.NewOption("Contacted", string(model.LeadStatusContacted)),
		huh.NewOption("Qualified", string(model.LeadStatusQualified)),
		huh.NewOption("Unqualified", string(model.LeadStatusUnqualified)),
	}, string(model.LeadStatusNew))
	if err != nil {
		return in, "", err
	}
	in.Status = status

	rating, err := PromptSelect("Rating:", []huh.Option[string]{
		huh.NewOption("Hot", string(model.LeadRatingHot)),
		huh.NewOption("Warm", string(model.LeadRatingWarm)),
		huh.NewOption("Cold", string(model.LeadRatingCold)),
	}, string(model.LeadRatingWarm))
	if err != nil {
		return in, "", err
	}
	in.Rating = rating

	value, err := PromptAmount("Estimated value (optional):", "Leave blank for 0.00", validation.ValidateAmountInput)
	if err != nil {
		return in, "", err
	}
	in.EstimatedValue = value

	stageID, err := PromptStageSelection(stages)
	if err != nil {
		return in, "", err
	}

	return in, stageID, nil
}

// PromptStageSelection picks an optional pipeline stage in pipeline
// order. Returns "" when skipped.
func PromptStageSelection(stages []model.PipelineStage) (string, error) {
	if len(stages) == 0 {
		return "", nil
	}

	opts := []huh.Option[string]{huh.NewOption("(skip)", "")}
	for _, stage := range stages {
		display := fmt.Sprintf("%s (%d%%)", stage.Name, stage.Probability)
		opts = append(opts, huh.NewOption(display, stage.ID))
	}

	return PromptSelect("Pipeline stage:", opts, "")
}

// PromptCampaignForm collects the campaign fields.
func PromptCampaignForm() (validation.CampaignInput, error) {
	var in validation.CampaignInput

	name, err := PromptInput("Campaign name:", "", validation.ValidateRequired("name"))
	if err != nil {
		return in, err
	}
	in.Name = name

	var typeOpts []huh.Option[string]
	for _, t := range []model.CampaignType{
		model.CampaignTypeEmail,
		model.CampaignTypeSocialMedia,
		model.CampaignTypeEvent,
		model.CampaignTypeWebinar,
		model.CampaignTypeDirectMail,
		model.CampaignTypeTelemarketing,
	} {
		typeOpts = append(typeOpts, huh.NewOption(t.Label(), string(t)))
	}
	campaignType, err := PromptSelect("Campaign type:", typeOpts, string(model.CampaignTypeEmail))
	if err != nil {
		return in, err
	}
	in.Type = campaignType

	start, err := PromptDate("Start date (YYYY-MM-DD):", "Press Enter for today", validation.ValidateDateInput)
	if err != nil {
		return in, err
	}
	in.StartDate = start

	end, err := PromptInput("End date (optional, YYYY-MM-DD):", "", validation.ValidateDateInput)
	if err != nil {
		return in, err
	}
	in.EndDate = end

	budget, err := PromptAmount("Budget (optional):", "Leave blank for 0.00", validation.ValidateAmountInput)
	if err != nil {
		return in, err
	}
	in.Budget = budget

	return in, nil
}

// PromptCampaignSelection picks a campaign for lead linking.
func PromptCampaignSelection(campaigns []model.Campaign, message string) (string, error) {
	if len(campaigns) == 0 {
		return "", fmt.Errorf("no campaigns available")
	}

	var opts []huh.Option[string]
	for _, c := range campaigns {
		display := fmt.Sprintf("%s (%s)", c.Name, c.Type.Label())
		opts = append(opts, huh.NewOption(display, c.ID))
	}

	return PromptSelect(message, opts, "")
}

// PromptLeadSelection picks a lead for campaign linking.
func PromptLeadSelection(leads []model.Lead, message string) (string, error) {
	if len(leads) == 0 {
		return "", fmt.Errorf("no leads available")
	}

	var opts []huh.Option[string]
	for _, lead := range leads {
		display := lead.Name
		if lead.Company != "" {
			display = fmt.Sprintf("%s (%s)", lead.Name, lead.Company)
		}
		opts = append(opts, huh.NewOption(display, lead.ID))
	}

	return PromptSelect(message, opts, "")
}
