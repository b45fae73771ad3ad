package store

import (
	"context"
	"net/http"

	"github.com/contaflow/contaflow/internal/jsonapi"
	"github.com/contaflow/contaflow/internal/model"
)

func (c *Client) ListLeads(ctx context.Context, params ListParams) ([]model.Lead, error) {
	query := params.Encode()
	body, err := c.cachedGet(ctx, cacheKey(jsonapi.TypeLeads, query), "/leads", query)
	if err != nil {
		return nil, err
	}
	return jsonapi.LeadsFromCollection(body), nil
}

func (c *Client) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	if id == "" {
		return nil, nil
	}

	body, err := c.cachedGet(ctx, jsonapi.TypeLeads+"/"+id, "/leads/"+id, "")
	if err != nil {
		return nil, err
	}

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	lead := jsonapi.LeadFromResource(*doc.Data)
	return &lead, nil
}

func (c *Client) CreateLead(ctx context.Context, lead model.Lead) (*model.Lead, error) {
	body, err := c.do(ctx, http.MethodPost, "/leads", "", jsonapi.LeadToDocument(lead), nil)
	if err != nil {
		return nil, err
	}

	c.cache.InvalidatePrefix(jsonapi.TypeLeads)

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	created := jsonapi.LeadFromResource(*doc.Data)
	return &created, nil
}

func (c *Client) UpdateLead(ctx context.Context, lead model.Lead) (*model.Lead, error) {
	body, err := c.do(ctx, http.MethodPatch, "/leads/"+lead.ID, "", jsonapi.LeadToDocument(lead), nil)
	if err != nil {
		return nil, err
	}

	c.cache.InvalidatePrefix(jsonapi.TypeLeads)

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	updated := jsonapi.LeadFromResource(*doc.Data)
	return &updated, nil
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/leads/"+id, "", nil, nil); err != nil {
		return err
	}
	c.cache.InvalidatePrefix(jsonapi.TypeLeads)
	return nil
}

func (c *Client) ListCampaigns(ctx context.Context, params ListParams) ([]model.Campaign, error) {
	query := params.Encode()
	body, err := c.cachedGet(ctx, cacheKey(jsonapi.TypeCampaigns, query), "/campaigns", query)
	if err != nil {
		return nil, err
	}
	return jsonapi.CampaignsFromCollection(body), nil
}

func (c *Client) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	if id == "" {
		return nil, nil
	}

	body, err := c.cachedGet(ctx, jsonapi.TypeCampaigns+"/"+id, "/campaigns/"+id, "")
	if err != nil {
		return nil, err
	}

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	campaign := jsonapi.CampaignFromResource(*doc.Data)
	return &campaign, nil
}

func (c *Client) CreateCampaign(ctx context.Context, campaign model.Campaign) (*model.Campaign, error) {
	body, err := c.do(ctx, http.MethodPost, "/campaigns", "", jsonapi.CampaignToDocument(campaign), nil)
	if err != nil {
		return nil, err
	}

	c.cache.InvalidatePrefix(jsonapi.TypeCampaigns)

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	created := jsonapi.CampaignFromResource(*doc.Data)
	return &created, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, campaign model.Campaign) (*model.Campaign, error) {
	body, err := c.do(ctx, http.MethodPatch, "/campaigns/"+campaign.ID, "", jsonapi.CampaignToDocument(campaign), nil)
	if err != nil {
		return nil, err
	}

	c.cache.InvalidatePrefix(jsonapi.TypeCampaigns)

	doc, err := jsonapi.DecodeDocument(body)
	if err != nil || doc.Data == nil {
		return nil, ErrNotFound
	}
	updated := jsonapi.CampaignFromResource(*doc.Data)
	return &updated, nil
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/campaigns/"+id, "", nil, nil); err != nil {
		return err
	}
	c.cache.InvalidatePrefix(jsonapi.TypeCampaigns)
	return nil
}

// LinkCampaignLead adds a lead to a campaign's leads relationship.
func (c *Client) LinkCampaignLead(ctx context.Context, campaignID, leadID string) error {
	payload := map[string]any{
		"data": []jsonapi.ResourceIdentifier{{Type: jsonapi.TypeLeads, ID: leadID}},
	}

	if _, err := c.do(ctx, http.MethodPost, "/campaigns/"+campaignID+"/relationships/leads", "", payload, nil); err != nil {
		return err
	}

	c.cache.InvalidatePrefix(jsonapi.TypeCampaigns)
	c.cache.InvalidatePrefix(jsonapi.TypeLeads)
	return nil
}

// UnlinkCampaignLead removes a lead from a campaign's leads relationship.
func (c *Client) UnlinkCampaignLead(ctx context.Context, campaignID, leadID string) error {
	payload := map[string]any{
		"data": []jsonapi.ResourceIdentifier{{Type: jsonapi.TypeLeads, ID: leadID}},
	}

	if _, err := c.do(ctx, http.MethodDelete, "/campaigns/"+campaignID+"/relationships/leads", "", payload, nil); err != nil {
		return err
	}

	c.cache.InvalidatePrefix(jsonapi.TypeCampaigns)
	c.cache.InvalidatePrefix(jsonapi.TypeLeads)
	return nil
}

func (c *Client) ListStages(ctx context.Context, params ListParams) ([]model.PipelineStage, error) {
	query := params.Encode()
	body, err := c.cachedGet(ctx, cacheKey(jsonapi.TypePipelineStages, query), "/pipeline-stages", query)
	if err != nil {
		return nil, err
	}
	return jsonapi.StagesFromCollection(body), nil
}
