package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
)

// CheckbookReader defines read operations for checkbook data
type CheckbookReader interface {
	// FindCheckbookByID retrieves a checkbook joined with its bank.
	FindCheckbookByID(ctx context.Context, checkbookID string) (*domain.CheckbookDetail, error)

	// ListCheckbooks retrieves checkbooks matching the filter, ordered by number.
	ListCheckbooks(ctx context.Context, filter domain.CheckbookFilter) ([]domain.CheckbookDetail, error)

	// CountCheckbooksByBank counts checkbooks referencing the bank.
	CountCheckbooksByBank(ctx context.Context, bankID string) (int64, error)
}

// CheckbookWriter defines write operations for checkbook data
type CheckbookWriter interface {
	// SaveCheckbook persists a new checkbook. CurrentBalance is stored as given.
	SaveCheckbook(ctx context.Context, checkbook domain.Checkbook) error

	// UpdateCheckbook updates number, active flag and range. Balances are never touched here.
	UpdateCheckbook(ctx context.Context, checkbook domain.Checkbook) error

	// DeleteCheckbook removes a checkbook. Existing checks yield apperrors.ErrHasDependents.
	DeleteCheckbook(ctx context.Context, checkbookID string) error

	// ReconcileCheckbookBalance recomputes the current balance from the CASHED checks
	// under a row lock and persists it.
	ReconcileCheckbookBalance(ctx context.Context, checkbookID string, userID string, now time.Time) (*domain.BalanceReconciliation, error)
}

// CheckbookRepositoryFacade combines all checkbook-related repository interfaces
type CheckbookRepositoryFacade interface {
	CheckbookReader
	CheckbookWriter
}
