package jsonapi

import "github.com/contaflow/contaflow/internal/model"

// CampaignFromResource maps a campaign resource.
func CampaignFromResource(res Resource) model.Campaign {
	attrs := res.Attributes

	return model.Campaign{
		ID:              res.ID,
		Name:            stringAttr(attrs, "name"),
		Type:            model.CampaignType(stringAttr(attrs, "campaignType")),
		Status:          model.CampaignStatus(stringAttr(attrs, "status")),
		StartDate:       stringAttr(attrs, "startDate"),
		EndDate:         stringAttr(attrs, "endDate"),
		Budget:          decimalAttr(attrs, "budget"),
		ActualCost:      decimalAttr(attrs, "actualCost"),
		ExpectedRevenue: decimalAttr(attrs, "expectedRevenue"),
		ActualRevenue:   decimalAttr(attrs, "actualRevenue"),
		Description:     stringAttr(attrs, "description"),
	}
}

// CampaignsFromCollection maps a collection response body.
func CampaignsFromCollection(body []byte) []model.Campaign {
	resources := DecodeCollection(body)
	campaigns := make([]model.Campaign, 0, len(resources))
	for _, res := range resources {
		campaigns = append(campaigns, CampaignFromResource(res))
	}
	return campaigns
}

// CampaignToDocument builds the campaign request body.
func CampaignToDocument(c model.Campaign) Document {
	attrs := map[string]any{
		"name":         c.Name,
		"campaignType": string(c.Type),
		"startDate":    c.StartDate,
	}
	setIfPresent(attrs, "status", string(c.Status))
	setIfPresent(attrs, "endDate", c.EndDate)
	setIfPresent(attrs, "description", c.Description)
	if !c.Budget.IsZero() {
		attrs["budget"] = number(c.Budget)
	}
	if !c.ActualCost.IsZero() {
		attrs["actualCost"] = number(c.ActualCost)
	}
	if !c.ExpectedRevenue.IsZero() {
		attrs["expectedRevenue"] = number(c.ExpectedRevenue)
	}
	if !c.ActualRevenue.IsZero() {
		attrs["actualRevenue"] = number(c.ActualRevenue)
	}

	return Document{Data: &Resource{
		Type:       TypeCampaigns,
		ID:         c.ID,
		Attributes: attrs,
	}}
}

// LeadFromResource maps a lead resource.
func LeadFromResource(res Resource) model.Lead {
	attrs := res.Attributes

	stageID := idAttr(attrs, "pipelineStageId")
	if stageID == "" {
		stageID = res.relationshipID("pipelineStage")
	}
	campaignID := idAttr(attrs, "campaignId")
	if campaignID == "" {
		campaignID = res.relationshipID("campaign")
	}

	return model.Lead{
		ID:              res.ID,
		Name:            stringAttr(attrs, "name"),
		Company:         stringAttr(attrs, "company"),
		Email:           stringAttr(attrs, "email"),
		Phone:           stringAttr(attrs, "phone"),
		Status:          model.LeadStatus(stringAttr(attrs, "status")),
		Rating:          model.LeadRating(stringAttr(attrs, "rating")),
		Source:          stringAttr(attrs, "source"),
		EstimatedValue:  decimalAttr(attrs, "estimatedValue"),
		PipelineStageID: stageID,
		CampaignID:      campaignID,
		Notes:           stringAttr(attrs, "notes"),
	}
}

// LeadsFromCollection maps a collection response body.
func LeadsFromCollection(body []byte) []model.Lead {
	resources := DecodeCollection(body)
	leads := make([]model.Lead, 0, len(resources))
	for _, res := range resources {
		leads = append(leads, LeadFromResource(res))
	}
	return leads
}

// LeadToDocument builds the lead request body. Pipeline stage and
// campaign references travel under relationships, not attributes.
func LeadToDocument(lead model.Lead) Document {
	attrs := map[string]any{
		"name": lead.Name,
	}
	setIfPresent(attrs, "company", lead.Company)
	setIfPresent(attrs, "email", lead.Email)
	setIfPresent(attrs, "phone", lead.Phone)
	setIfPresent(attrs, "status", string(lead.Status))
	setIfPresent(attrs, "rating", string(lead.Rating))
	setIfPresent(attrs, "source", lead.Source)
	setIfPresent(attrs, "notes", lead.Notes)
	if !lead.EstimatedValue.IsZero() {
		attrs["estimatedValue"] = number(lead.EstimatedValue)
	}

	res := &Resource{
		Type:       TypeLeads,
		ID:         lead.ID,
		Attributes: attrs,
	}

	rels := map[string]Relationship{}
	if lead.PipelineStageID != "" {
		rels["pipelineStage"] = Ref(TypePipelineStages, lead.PipelineStageID)
	}
	if lead.CampaignID != "" {
		rels["campaign"] = Ref(TypeCampaigns, lead.CampaignID)
	}
	if len(rels) > 0 {
		res.Relationships = rels
	}

	return Document{Data: res}
}

// StageFromResource maps a pipeline stage resource.
func StageFromResource(res Resource) model.PipelineStage {
	attrs := res.Attributes

	return model.PipelineStage{
		ID:          res.ID,
		Name:        stringAttr(attrs, "name"),
		Position:    intAttr(attrs, "position"),
		Probability: intAttr(attrs, "probability"),
		IsClosed:    boolAttr(attrs, "isClosed"),
	}
}

// StagesFromCollection maps a collection response body.
func StagesFromCollection(body []byte) []model.PipelineStage {
	resources := DecodeCollection(body)
	stages := make([]model.PipelineStage, 0, len(resources))
	for _, res := range resources {
		stages = append(stages, StageFromResource(res))
	}
	return stages
}
