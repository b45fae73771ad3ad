package model

import "github.com/shopspring/decimal"

// CampaignType enumerates marketing campaign channels.
type CampaignType string

const (
	CampaignTypeEmail         CampaignType = "email"
	CampaignTypeSocialMedia   CampaignType = "social_media"
	CampaignTypeEvent         CampaignType = "event"
	CampaignTypeWebinar       CampaignType = "webinar"
	CampaignTypeDirectMail    CampaignType = "direct_mail"
	CampaignTypeTelemarketing CampaignType = "telemarketing"
)

func (t CampaignType) Valid() bool {
	switch t {
	case CampaignTypeEmail, CampaignTypeSocialMedia, CampaignTypeEvent,
		CampaignTypeWebinar, CampaignTypeDirectMail, CampaignTypeTelemarketing:
		return true
	}
	return false
}

func (t CampaignType) Label() string {
	switch t {
	case CampaignTypeEmail:
		return "Email"
	case CampaignTypeSocialMedia:
		return "Social Media"
	case CampaignTypeEvent:
		return "Event"
	case CampaignTypeWebinar:
		return "Webinar"
	case CampaignTypeDirectMail:
		return "Direct Mail"
	case CampaignTypeTelemarketing:
		return "Telemarketing"
	}
	return string(t)
}

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusPlanned   CampaignStatus = "planned"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusPlanned, CampaignStatusActive,
		CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

// Campaign is a CRM marketing campaign.
type Campaign struct {
	ID              string
	Name            string
	Type            CampaignType
	Status          CampaignStatus
	StartDate       string // YYYY-MM-DD
	EndDate         string // YYYY-MM-DD, must not precede StartDate
	Budget          decimal.Decimal
	ActualCost      decimal.Decimal
	ExpectedRevenue decimal.Decimal
	ActualRevenue   decimal.Decimal
	Description     string
}

// LeadStatus tracks a lead through the pipeline.
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusUnqualified LeadStatus = "unqualified"
	LeadStatusConverted   LeadStatus = "converted"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusUnqualified, LeadStatusConverted:
		return true
	}
	return false
}

func (s LeadStatus) Label() string {
	switch s {
	case LeadStatusNew:
		return "New"
	case LeadStatusContacted:
		return "Contacted"
	case LeadStatusQualified:
		return "Qualified"
	case LeadStatusUnqualified:
		return "Unqualified"
	case LeadStatusConverted:
		return "Converted"
	}
	return string(s)
}

// LeadRating is a coarse temperature score.
type LeadRating string

const (
	LeadRatingHot  LeadRating = "hot"
	LeadRatingWarm LeadRating = "warm"
	LeadRatingCold LeadRating = "cold"
)

func (r LeadRating) Valid() bool {
	return r == LeadRatingHot || r == LeadRatingWarm || r == LeadRatingCold
}

// Lead is a CRM prospect record.
type Lead struct {
	ID              string
	Name            string
	Company         string
	Email           string
	Phone           string
	Status          LeadStatus
	Rating          LeadRating
	Source          string
	EstimatedValue  decimal.Decimal
	PipelineStageID string
	CampaignID      string
	Notes           string
}

// PipelineStage is an ordered step of the sales pipeline.
type PipelineStage struct {
	ID          string
	Name        string
	Position    int
	Probability int // percent, 0-100
	IsClosed    bool
}
