package pgsql

import (
	portsrepo "github.com/SscSPs/cheque_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	bankRepo := newPgxBankRepository(dbPool)
	checkbookRepo := newPgxCheckbookRepository(dbPool)
	checkRepo := newPgxCheckRepository(dbPool, checkbookRepo)

	return portsrepo.RepositoryProvider{
		BankRepo:      bankRepo,
		CheckbookRepo: checkbookRepo,
		CheckRepo:     checkRepo,
	}
}
