package services

import (
	portsrepo "github.com/homeledger/homeledger-backend/internal/core/ports/repositories"
	portssvc "github.com/homeledger/homeledger-backend/internal/core/ports/services"
)

// NewServiceContainer wires every application service against the repository
// provider and returns the container the handlers consume.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	userSvc := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		User:      userSvc,
		Category:  NewCategoryService(repos.CategoryRepo, repos.EntryRepo, userSvc),
		Ledger:    NewLedgerService(repos.EntryRepo, userSvc),
		Import:    NewImportService(repos.EntryRepo, repos.CategoryRepo, userSvc),
		Recurring: NewRecurringService(repos.RecurringRepo, repos.EntryRepo, repos.CategoryRepo, userSvc),
		Reporting: NewReportingService(repos.EntryRepo, repos.CategoryRepo),
	}
}
