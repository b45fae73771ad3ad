package service

import (
	"github.com/contaflow/contaflow/internal/config"
	"github.com/contaflow/contaflow/internal/store"
)

type Service struct {
	Account *AccountService
	Entry   *EntryService
	Report  *ReportService
	CRM     *CRMService
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Account: NewAccountService(repo, cfg),
		Entry:   NewEntryService(repo, cfg),
		Report:  NewReportService(repo, cfg),
		CRM:     NewCRMService(repo, cfg),
	}
}
