package repositories

import (
	"context"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CheckReader defines read operations for check data
type CheckReader interface {
	// FindCheckByID retrieves a check joined with its checkbook and bank.
	FindCheckByID(ctx context.Context, checkID string) (*domain.CheckDetail, error)

	// CheckNumberExists reports whether another check in the checkbook already uses number.
	// excludeCheckID may be empty.
	CheckNumberExists(ctx context.Context, checkbookID string, number string, excludeCheckID string) (bool, error)

	// CountChecksByCheckbook counts checks referencing the checkbook.
	CountChecksByCheckbook(ctx context.Context, checkbookID string) (int64, error)

	// ListChecks returns one page of the filtered set and the size of the whole set.
	ListChecks(ctx context.Context, filter domain.CheckFilter, limit int, offset int) ([]domain.CheckDetail, int64, error)

	// ListAllChecks returns the whole filtered set ordered by due date and number.
	ListAllChecks(ctx context.Context, filter domain.CheckFilter) ([]domain.CheckDetail, error)

	// SumAmountsByStatus sums amounts of the filtered set grouped by status.
	SumAmountsByStatus(ctx context.Context, filter domain.CheckFilter) (map[domain.CheckStatus]decimal.Decimal, error)
}

// CheckWriter defines write operations for check data. Every method applies the check
// row and the checkbook balance deltas atomically: both succeed or neither does.
type CheckWriter interface {
	// SaveCheck inserts a check and applies balanceChanges (checkbookID -> signed delta).
	SaveCheck(ctx context.Context, check domain.Check, balanceChanges map[string]decimal.Decimal) error

	// UpdateCheck overwrites a check whose stored version equals expectedVersion and applies
	// balanceChanges. A version mismatch yields apperrors.ErrConflict.
	UpdateCheck(ctx context.Context, check domain.Check, expectedVersion int64, balanceChanges map[string]decimal.Decimal) error

	// DeleteCheck removes a check whose stored version equals check.Version and applies
	// balanceChanges. Audit fields of check are used for the balance rows.
	DeleteCheck(ctx context.Context, check domain.Check, balanceChanges map[string]decimal.Decimal) error
}

// CheckRepositoryFacade combines all check-related repository interfaces
type CheckRepositoryFacade interface {
	CheckReader
	CheckWriter
}
