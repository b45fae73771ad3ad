package store

import (
	"context"

	"github.com/contaflow/contaflow/internal/model"
)

// AccountRepository covers chart-of-accounts operations.
type AccountRepository interface {
	ListAccounts(ctx context.Context, params ListParams) ([]model.Account, error)
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	CreateAccount(ctx context.Context, acc model.Account) (*model.Account, error)
	UpdateAccount(ctx context.Context, acc model.Account) (*model.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

// JournalRepository covers journal entry and line operations.
type JournalRepository interface {
	ListEntries(ctx context.Context, params ListParams) ([]model.JournalEntry, error)
	GetEntry(ctx context.Context, id string, withLines bool) (*model.JournalEntry, error)
	CreateEntry(ctx context.Context, entry model.JournalEntry) (*model.JournalEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	CreateLine(ctx context.Context, line model.JournalLine) (*model.JournalLine, error)
	PostEntry(ctx context.Context, id string) (*model.JournalEntry, error)
	ReverseEntry(ctx context.Context, id string) (*model.JournalEntry, error)
}

// CRMRepository covers leads, campaigns and pipeline stages.
type CRMRepository interface {
	ListLeads(ctx context.Context, params ListParams) ([]model.Lead, error)
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	CreateLead(ctx context.Context, lead model.Lead) (*model.Lead, error)
	UpdateLead(ctx context.Context, lead model.Lead) (*model.Lead, error)
	DeleteLead(ctx context.Context, id string) error

	ListCampaigns(ctx context.Context, params ListParams) ([]model.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*model.Campaign, error)
	CreateCampaign(ctx context.Context, c model.Campaign) (*model.Campaign, error)
	UpdateCampaign(ctx context.Context, c model.Campaign) (*model.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error

	LinkCampaignLead(ctx context.Context, campaignID, leadID string) error
	UnlinkCampaignLead(ctx context.Context, campaignID, leadID string) error

	ListStages(ctx context.Context, params ListParams) ([]model.PipelineStage, error)
}

// ReportRepository fetches the read-only accounting reports.
type ReportRepository interface {
	GetReport(ctx context.Context, name model.ReportName, params ListParams) (*model.Report, error)
}

// Repository is the full backend surface the services depend on.
type Repository interface {
	AccountRepository
	JournalRepository
	CRMRepository
	ReportRepository
}
