package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/contaflow/contaflow/internal/balance"
	"github.com/contaflow/contaflow/internal/config"
	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/store"
	"github.com/contaflow/contaflow/internal/validation"
)

type EntryService struct {
	repo store.JournalRepository
	cfg  *config.Config
}

func NewEntryService(repo store.JournalRepository, cfg *config.Config) *EntryService {
	return &EntryService{repo: repo, cfg: cfg}
}

func (es *EntryService) List(ctx context.Context, status string, page int) ([]model.JournalEntry, error) {
	params := store.ListParams{
		PageNumber: page,
		PageSize:   es.cfg.Defaults.PageSize,
		Include:    []string{"journalLines", "journalLines.account"},
	}
	if status != "" {
		params.Filters = map[string]string{"status": status}
	}
	return es.repo.ListEntries(ctx, params)
}

func (es *EntryService) Get(ctx context.Context, id string) (*model.JournalEntry, error) {
	return es.repo.GetEntry(ctx, id, true)
}

// CreateWithLines runs the composite create: validate the full payload,
// create the draft header, then create every line concurrently and wait
// for all of them. If any line fails, the created header is deleted so
// no partially-created, unbalanced draft is left behind, and the
// composite operation reports failure. On success the finished entry is
// refetched with includes for display.
func (es *EntryService) CreateWithLines(ctx context.Context, in validation.EntryInput) (*model.JournalEntry, error) {
	if errs := validation.ValidateEntry(in); !errs.Valid() {
		return nil, &ValidationFailedError{Errors: errs}
	}

	lines := in.AssignedLines()

	header := model.JournalEntry{
		Date:        in.Date,
		Description: in.Description,
		Reference:   in.Reference,
	}

	created, err := es.repo.CreateEntry(ctx, header)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, line := range lines {
		g.Go(func() error {
			_, err := es.repo.CreateLine(gctx, model.JournalLine{
				JournalEntryID: created.ID,
				AccountID:      line.AccountID,
				Debit:          balance.ParseAmount(line.Debit),
				Credit:         balance.ParseAmount(line.Credit),
				Description:    line.Description,
			})
			return err
		})
	}

	if err := g.Wait(); err != nil {
		// Compensate: drop the orphaned header rather than leave an
		// unbalanced draft on the backend.
		if delErr := es.repo.DeleteEntry(ctx, created.ID); delErr != nil {
			return nil, fmt.Errorf("failed to create lines (%w) and to clean up entry %s: %v", err, created.ID, delErr)
		}
		return nil, fmt.Errorf("failed to create lines: %w", err)
	}

	return es.repo.GetEntry(ctx, created.ID, true)
}

// Post finalizes a draft entry. The backend re-validates balance
// authoritatively; the client checks first to fail fast.
func (es *EntryService) Post(ctx context.Context, id string) (*model.JournalEntry, error) {
	entry, err := es.repo.GetEntry(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, store.ErrNotFound
	}
	if !entry.Status.Editable() {
		return nil, fmt.Errorf("entry %s is %s and can no longer be posted", entry.Number, entry.Status)
	}

	totals := lineTotals(entry.Lines)
	if !totals.IsBalanced {
		return nil, fmt.Errorf("entry %s is not balanced (debit %s, credit %s)",
			entry.Number, totals.TotalDebit.StringFixed(2), totals.TotalCredit.StringFixed(2))
	}

	return es.repo.PostEntry(ctx, id)
}

// Reverse creates the reversing entry for a posted entry.
func (es *EntryService) Reverse(ctx context.Context, id string) (*model.JournalEntry, error) {
	entry, err := es.repo.GetEntry(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, store.ErrNotFound
	}
	if entry.Status != model.EntryStatusPosted {
		return nil, fmt.Errorf("only posted entries can be reversed (entry %s is %s)", entry.Number, entry.Status)
	}

	return es.repo.ReverseEntry(ctx, id)
}

func lineTotals(lines []model.JournalLine) balance.Totals {
	debits := make([]decimal.Decimal, 0, len(lines))
	credits := make([]decimal.Decimal, 0, len(lines))
	for _, line := range lines {
		debits = append(debits, line.Debit)
		credits = append(credits, line.Credit)
	}
	return balance.ComputeDecimal(debits, credits)
}
