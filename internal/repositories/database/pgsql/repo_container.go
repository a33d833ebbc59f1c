package pgsql

import (
	portsrepo "github.com/homeledger/homeledger-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		CategoryRepo:  newPgxCategoryRepository(dbPool),
		EntryRepo:     newPgxExpenseRepository(dbPool),
		RecurringRepo: newPgxRecurringRepository(dbPool),
	}
}
