package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/contaflow/contaflow/internal/config"
	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/store"
	"github.com/contaflow/contaflow/internal/validation"
)

// ValidationFailedError wraps a field-keyed error map so callers can
// surface per-field messages without a network round-trip having
// happened.
type ValidationFailedError struct {
	Errors validation.Errors
}

func (e *ValidationFailedError) Error() string {
	fields := e.Errors.Fields()
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, e.Errors[f]))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

type AccountService struct {
	repo store.AccountRepository
	cfg  *config.Config
}

func NewAccountService(repo store.AccountRepository, cfg *config.Config) *AccountService {
	return &AccountService{repo: repo, cfg: cfg}
}

func (as *AccountService) List(ctx context.Context, status string, page int) ([]model.Account, error) {
	params := store.ListParams{
		PageNumber: page,
		PageSize:   as.cfg.Defaults.PageSize,
	}
	if status != "" {
		params.Filters = map[string]string{"status": status}
	}
	return as.repo.ListAccounts(ctx, params)
}

// ListPostable returns only accounts journal lines may target. The
// backend is authoritative; this filter just keeps non-postable
// accounts out of the line editor's account picker.
func (as *AccountService) ListPostable(ctx context.Context) ([]model.Account, error) {
	accounts, err := as.repo.ListAccounts(ctx, store.ListParams{
		Filters: map[string]string{"status": string(model.AccountStatusActive)},
	})
	if err != nil {
		return nil, err
	}

	postable := make([]model.Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.Postable() {
			postable = append(postable, acc)
		}
	}
	return postable, nil
}

func (as *AccountService) Get(ctx context.Context, id string) (*model.Account, error) {
	return as.repo.GetAccount(ctx, id)
}

func (as *AccountService) Create(ctx context.Context, in validation.AccountInput) (*model.Account, error) {
	if errs := validation.ValidateAccount(in); !errs.Valid() {
		return nil, &ValidationFailedError{Errors: errs}
	}

	acc := accountFromInput(in)
	if acc.Currency == "" {
		acc.Currency = as.cfg.Defaults.Currency
	}
	if acc.Status == "" {
		acc.Status = model.AccountStatusActive
	}

	return as.repo.CreateAccount(ctx, acc)
}

func (as *AccountService) Update(ctx context.Context, id string, in validation.AccountInput) (*model.Account, error) {
	if errs := validation.ValidateAccount(in); !errs.Valid() {
		return nil, &ValidationFailedError{Errors: errs}
	}

	acc := accountFromInput(in)
	acc.ID = id
	return as.repo.UpdateAccount(ctx, acc)
}

// Archive soft-retires an account. Accounts are never deleted in place.
func (as *AccountService) Archive(ctx context.Context, id string) (*model.Account, error) {
	current, err := as.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, store.ErrNotFound
	}

	current.Status = model.AccountStatusArchived
	return as.repo.UpdateAccount(ctx, *current)
}

// DefaultCurrency is the configured fallback currency for new accounts.
func (as *AccountService) DefaultCurrency() string {
	return as.cfg.Defaults.Currency
}

// Delete removes an account outright. The backend rejects deletion of
// accounts with movements with a 409, which surfaces as
// store.ErrConflict; Archive is the safe alternative.
func (as *AccountService) Delete(ctx context.Context, id string) error {
	return as.repo.DeleteAccount(ctx, id)
}

func accountFromInput(in validation.AccountInput) model.Account {
	acc := model.Account{
		Code:        strings.TrimSpace(in.Code),
		Name:        strings.TrimSpace(in.Name),
		Type:        model.AccountType(in.Type),
		Nature:      model.AccountNature(in.Nature),
		Level:       in.Level,
		IsPostable:  in.IsPostable,
		Status:      model.AccountStatus(in.Status),
		Currency:    strings.ToUpper(strings.TrimSpace(in.Currency)),
		Description: in.Description,
	}
	if in.ParentID != "" {
		parentID := in.ParentID
		acc.ParentID = &parentID
	}
	return acc
}
