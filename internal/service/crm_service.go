package service

import (
	"context"
	"strings"

	"github.com/contaflow/contaflow/internal/balance"
	"github.com/contaflow/contaflow/internal/config"
	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/store"
	"github.com/contaflow/contaflow/internal/validation"
)

type CRMService struct {
	repo store.CRMRepository
	cfg  *config.Config
}

func NewCRMService(repo store.CRMRepository, cfg *config.Config) *CRMService {
	return &CRMService{repo: repo, cfg: cfg}
}

func (cs *CRMService) ListLeads(ctx context.Context, status string, page int) ([]model.Lead, error) {
	params := store.ListParams{
		PageNumber: page,
		PageSize:   cs.cfg.Defaults.PageSize,
	}
	if status != "" {
		params.Filters = map[string]string{"status": status}
	}
	return cs.repo.ListLeads(ctx, params)
}

func (cs *CRMService) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	return cs.repo.GetLead(ctx, id)
}

func (cs *CRMService) CreateLead(ctx context.Context, in validation.LeadInput, stageID, campaignID string) (*model.Lead, error) {
	if errs := validation.ValidateLead(in); !errs.Valid() {
		return nil, &ValidationFailedError{Errors: errs}
	}

	lead := model.Lead{
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Status:          model.LeadStatus(in.Status),
		Rating:          model.LeadRating(in.Rating),
		EstimatedValue:  balance.ParseAmount(in.EstimatedValue),
		PipelineStageID: stageID,
		CampaignID:      campaignID,
	}
	if lead.Status == "" {
		lead.Status = model.LeadStatusNew
	}

	return cs.repo.CreateLead(ctx, lead)
}

func (cs *CRMService) UpdateLead(ctx context.Context, lead model.Lead) (*model.Lead, error) {
	in := validation.LeadInput{
		Name:   lead.Name,
		Email:  lead.Email,
		Status: string(lead.Status),
		Rating: string(lead.Rating),
	}
	if errs := validation.ValidateLead(in); !errs.Valid() {
		return nil, &ValidationFailedError{Errors: errs}
	}
	return cs.repo.UpdateLead(ctx, lead)
}

// DeleteLead removes a lead. A backend 409 means the lead still has
// associated campaigns and surfaces as store.ErrConflict.
func (cs *CRMService) DeleteLead(ctx context.Context, id string) error {
	return cs.repo.DeleteLead(ctx, id)
}

func (cs *CRMService) ListCampaigns(ctx context.Context, status string, page int) ([]model.Campaign, error) {
	params := store.ListParams{
		PageNumber: page,
		PageSize:   cs.cfg.Defaults.PageSize,
	}
	if status != "" {
		params.Filters = map[string]string{"status": status}
	}
	return cs.repo.ListCampaigns(ctx, params)
}

func (cs *CRMService) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	return cs.repo.GetCampaign(ctx, id)
}

func (cs *CRMService) CreateCampaign(ctx context.Context, in validation.CampaignInput) (*model.Campaign, error) {
	if errs := validation.ValidateCampaign(in); !errs.Valid() {
		return nil, &ValidationFailedError{Errors: errs}
	}

	campaign := model.Campaign{
		Name:      strings.TrimSpace(in.Name),
		Type:      model.CampaignType(in.Type),
		Status:    model.CampaignStatus(in.Status),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Budget:    balance.ParseAmount(in.Budget),
	}
	if campaign.Status == "" {
		campaign.Status = model.CampaignStatusPlanned
	}

	return cs.repo.CreateCampaign(ctx, campaign)
}

func (cs *CRMService) UpdateCampaign(ctx context.Context, campaign model.Campaign) (*model.Campaign, error) {
	in := validation.CampaignInput{
		Name:      campaign.Name,
		Type:      string(campaign.Type),
		Status:    string(campaign.Status),
		StartDate: campaign.StartDate,
		EndDate:   campaign.EndDate,
	}
	if errs := validation.ValidateCampaign(in); !errs.Valid() {
		return nil, &ValidationFailedError{Errors: errs}
	}
	return cs.repo.UpdateCampaign(ctx, campaign)
}

func (cs *CRMService) DeleteCampaign(ctx context.Context, id string) error {
	return cs.repo.DeleteCampaign(ctx, id)
}

func (cs *CRMService) LinkLead(ctx context.Context, campaignID, leadID string) error {
	return cs.repo.LinkCampaignLead(ctx, campaignID, leadID)
}

func (cs *CRMService) UnlinkLead(ctx context.Context, campaignID, leadID string) error {
	return cs.repo.UnlinkCampaignLead(ctx, campaignID, leadID)
}

func (cs *CRMService) ListStages(ctx context.Context) ([]model.PipelineStage, error) {
	return cs.repo.ListStages(ctx, store.ListParams{})
}
