package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflow/contaflow/internal/config"
	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/store"
	"github.com/contaflow/contaflow/internal/validation"
)

// fakeRepo implements store.Repository in memory with per-method hooks
// so tests can inject failures.
type fakeRepo struct {
	mu sync.Mutex

	accounts map[string]model.Account
	entries  map[string]model.JournalEntry
	lines    []model.JournalLine
	leads    map[string]model.Lead

	nextID int

	createLineErr  func(line model.JournalLine) error
	deletedEntries []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		accounts: map[string]model.Account{},
		entries:  map[string]model.JournalEntry{},
		leads:    map[string]model.Lead{},
	}
}

func (f *fakeRepo) id() string {
	f.nextID++
	return string(rune('0' + f.nextID))
}

func (f *fakeRepo) ListAccounts(ctx context.Context, params store.ListParams) ([]model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Account, 0, len(f.accounts))
	for _, acc := range f.accounts {
		out = append(out, acc)
	}
	return out, nil
}

func (f *fakeRepo) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	acc, ok := f.accounts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &acc, nil
}

func (f *fakeRepo) CreateAccount(ctx context.Context, acc model.Account) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	acc.ID = f.id()
	f.accounts[acc.ID] = acc
	return &acc, nil
}

func (f *fakeRepo) UpdateAccount(ctx context.Context, acc model.Account) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[acc.ID] = acc
	return &acc, nil
}

func (f *fakeRepo) DeleteAccount(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, id)
	return nil
}

func (f *fakeRepo) ListEntries(ctx context.Context, params store.ListParams) ([]model.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.JournalEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeRepo) GetEntry(ctx context.Context, id string, withLines bool) (*model.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if withLines {
		for _, line := range f.lines {
			if line.JournalEntryID == id {
				e.Lines = append(e.Lines, line)
			}
		}
	}
	return &e, nil
}

func (f *fakeRepo) CreateEntry(ctx context.Context, entry model.JournalEntry) (*model.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry.ID = f.id()
	entry.Status = model.EntryStatusDraft
	f.entries[entry.ID] = entry
	return &entry, nil
}

func (f *fakeRepo) DeleteEntry(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, id)
	f.deletedEntries = append(f.deletedEntries, id)
	return nil
}

func (f *fakeRepo) CreateLine(ctx context.Context, line model.JournalLine) (*model.JournalLine, error) {
	if f.createLineErr != nil {
		if err := f.createLineErr(line); err != nil {
			return nil, err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	line.ID = f.id()
	f.lines = append(f.lines, line)
	return &line, nil
}

func (f *fakeRepo) PostEntry(ctx context.Context, id string) (*model.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.entries[id]
	e.Status = model.EntryStatusPosted
	f.entries[id] = e
	return &e, nil
}

func (f *fakeRepo) ReverseEntry(ctx context.Context, id string) (*model.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.entries[id]
	e.Status = model.EntryStatusReversed
	f.entries[id] = e
	return &e, nil
}

func (f *fakeRepo) ListLeads(ctx context.Context, params store.ListParams) ([]model.Lead, error) {
	return nil, nil
}

func (f *fakeRepo) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead, ok := f.leads[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &lead, nil
}

func (f *fakeRepo) CreateLead(ctx context.Context, lead model.Lead) (*model.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lead.ID = f.id()
	f.leads[lead.ID] = lead
	return &lead, nil
}

func (f *fakeRepo) UpdateLead(ctx context.Context, lead model.Lead) (*model.Lead, error) {
	return &lead, nil
}

func (f *fakeRepo) DeleteLead(ctx context.Context, id string) error { return nil }

func (f *fakeRepo) ListCampaigns(ctx context.Context, params store.ListParams) ([]model.Campaign, error) {
	return nil, nil
}

func (f *fakeRepo) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	return nil, store.ErrNotFound
}

func (f *fakeRepo) CreateCampaign(ctx context.Context, c model.Campaign) (*model.Campaign, error) {
	c.ID = f.id()
	return &c, nil
}

func (f *fakeRepo) UpdateCampaign(ctx context.Context, c model.Campaign) (*model.Campaign, error) {
	return &c, nil
}

func (f *fakeRepo) DeleteCampaign(ctx context.Context, id string) error { return nil }

func (f *fakeRepo) LinkCampaignLead(ctx context.Context, campaignID, leadID string) error {
	return nil
}

func (f *fakeRepo) UnlinkCampaignLead(ctx context.Context, campaignID, leadID string) error {
	return nil
}

func (f *fakeRepo) ListStages(ctx context.Context, params store.ListParams) ([]model.PipelineStage, error) {
	return nil, nil
}

func (f *fakeRepo) GetReport(ctx context.Context, name model.ReportName, params store.ListParams) (*model.Report, error) {
	return &model.Report{Name: name, Title: name.Title()}, nil
}

func balancedEntryInput() validation.EntryInput {
	return validation.EntryInput{
		Date:        "2026-03-15",
		Description: "Compra de equipo de cómputo",
		Lines: []validation.LineInput{
			{AccountID: "a1", Debit: "15000.00"},
			{AccountID: "a2", Credit: "15000.00"},
		},
	}
}

func TestCreateWithLinesSuccess(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEntryService(repo, config.NewDefault())

	entry, err := svc.CreateWithLines(context.Background(), balancedEntryInput())
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, model.EntryStatusDraft, entry.Status)
	assert.Len(t, entry.Lines, 2)
	assert.Empty(t, repo.deletedEntries)
}

func TestCreateWithLinesValidationShortCircuits(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEntryService(repo, config.NewDefault())

	in := balancedEntryInput()
	in.Lines[1].Credit = "14000.00"

	entry, err := svc.CreateWithLines(context.Background(), in)
	assert.Nil(t, entry)

	var vErr *ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "balance")

	// Nothing should have reached the backend.
	assert.Empty(t, repo.entries)
}

func TestCreateWithLinesCompensatesOnLineFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.createLineErr = func(line model.JournalLine) error {
		if line.AccountID == "a2" {
			return errors.New("account is closed for posting")
		}
		return nil
	}
	svc := NewEntryService(repo, config.NewDefault())

	entry, err := svc.CreateWithLines(context.Background(), balancedEntryInput())
	assert.Nil(t, entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create lines")

	// The orphaned header must have been deleted.
	require.Len(t, repo.deletedEntries, 1)
	assert.Empty(t, repo.entries)
}

func TestPostRejectsUnbalancedEntry(t *testing.T) {
	repo := newFakeRepo()
	created, err := repo.CreateEntry(context.Background(), model.JournalEntry{
		Date: "2026-03-15", Number: "POL-7",
	})
	require.NoError(t, err)
	_, err = repo.CreateLine(context.Background(), model.JournalLine{
		JournalEntryID: created.ID,
		AccountID:      "a1",
		Debit:          decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	svc := NewEntryService(repo, config.NewDefault())
	entry, err := svc.Post(context.Background(), created.ID)
	assert.Nil(t, entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not balanced")
}

func TestPostRejectsNonEditableEntry(t *testing.T) {
	repo := newFakeRepo()
	created, err := repo.CreateEntry(context.Background(), model.JournalEntry{Number: "POL-8"})
	require.NoError(t, err)
	e := repo.entries[created.ID]
	e.Status = model.EntryStatusPosted
	repo.entries[created.ID] = e

	svc := NewEntryService(repo, config.NewDefault())
	_, err = svc.Post(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can no longer be posted")
}

func TestReverseRequiresPostedStatus(t *testing.T) {
	repo := newFakeRepo()
	created, err := repo.CreateEntry(context.Background(), model.JournalEntry{Number: "POL-9"})
	require.NoError(t, err)

	svc := NewEntryService(repo, config.NewDefault())
	_, err = svc.Reverse(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only posted entries")
}

func TestAccountCreateAppliesDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := NewAccountService(repo, config.NewDefault())

	acc, err := svc.Create(context.Background(), validation.AccountInput{
		Code:       "1101",
		Name:       "Bancos",
		Type:       string(model.AccountTypeAsset),
		Nature:     string(model.NatureDebit),
		Level:      2,
		IsPostable: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "MXN", acc.Currency)
	assert.Equal(t, model.AccountStatusActive, acc.Status)
}

func TestAccountCreateValidationFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := NewAccountService(repo, config.NewDefault())

	_, err := svc.Create(context.Background(), validation.AccountInput{Name: "Sin código"})
	var vErr *ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "code")
	assert.Empty(t, repo.accounts)
}

func TestListPostableFiltersAccounts(t *testing.T) {
	repo := newFakeRepo()
	_, err := repo.CreateAccount(context.Background(), model.Account{
		Code: "1000", Name: "Activo", IsPostable: false, Status: model.AccountStatusActive,
	})
	require.NoError(t, err)
	_, err = repo.CreateAccount(context.Background(), model.Account{
		Code: "1101", Name: "Bancos", IsPostable: true, Status: model.AccountStatusActive,
	})
	require.NoError(t, err)
	_, err = repo.CreateAccount(context.Background(), model.Account{
		Code: "1102", Name: "Caja vieja", IsPostable: true, Status: model.AccountStatusArchived,
	})
	require.NoError(t, err)

	svc := NewAccountService(repo, config.NewDefault())
	postable, err := svc.ListPostable(context.Background())
	require.NoError(t, err)
	require.Len(t, postable, 1)
	assert.Equal(t, "1101", postable[0].Code)
}

func TestArchiveSetsStatus(t *testing.T) {
	repo := newFakeRepo()
	created, err := repo.CreateAccount(context.Background(), model.Account{
		Code: "1101", Name: "Bancos", Status: model.AccountStatusActive,
	})
	require.NoError(t, err)

	svc := NewAccountService(repo, config.NewDefault())
	archived, err := svc.Archive(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AccountStatusArchived, archived.Status)
}

func TestCreateLeadDefaultsStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCRMService(repo, config.NewDefault())

	lead, err := svc.CreateLead(context.Background(), validation.LeadInput{
		Name: "María Fernández", Email: "maria@example.mx",
	}, "stage-1", "")
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusNew, lead.Status)
	assert.Equal(t, "stage-1", lead.PipelineStageID)
}

func TestCreateLeadRejectsBadEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCRMService(repo, config.NewDefault())

	_, err := svc.CreateLead(context.Background(), validation.LeadInput{
		Name: "María Fernández", Email: "no-es-correo",
	}, "", "")
	var vErr *ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "email")
}

func TestCreateCampaignRejectsReversedDates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCRMService(repo, config.NewDefault())

	_, err := svc.CreateCampaign(context.Background(), validation.CampaignInput{
		Name:      "Expo contadores",
		Type:      string(model.CampaignTypeEvent),
		StartDate: "2026-05-10",
		EndDate:   "2026-05-01",
	})
	var vErr *ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "endDate")
}

func TestReportGetPassesThrough(t *testing.T) {
	repo := newFakeRepo()
	svc := NewReportService(repo, config.NewDefault())

	report, err := svc.Get(context.Background(), model.ReportBalanceGeneral, "2026-03", "")
	require.NoError(t, err)
	assert.Equal(t, "Balance General", report.Title)
}
