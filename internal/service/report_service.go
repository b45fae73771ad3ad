package service

import (
	"context"

	"github.com/contaflow/contaflow/internal/config"
	"github.com/contaflow/contaflow/internal/model"
	"github.com/contaflow/contaflow/internal/store"
)

type ReportService struct {
	repo store.ReportRepository
	cfg  *config.Config
}

func NewReportService(repo store.ReportRepository, cfg *config.Config) *ReportService {
	return &ReportService{repo: repo, cfg: cfg}
}

// Get fetches one of the read-only accounting reports. Period and
// account filters pass straight through; the backend computes the
// report.
func (rs *ReportService) Get(ctx context.Context, name model.ReportName, period, accountID string) (*model.Report, error) {
	filters := map[string]string{}
	if period != "" {
		filters["period"] = period
	}
	if accountID != "" {
		filters["account"] = accountID
	}

	params := store.ListParams{}
	if len(filters) > 0 {
		params.Filters = filters
	}

	return rs.repo.GetReport(ctx, name, params)
}
