package repositories

import (
	"context"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
)

// BankReader defines read operations for bank data
type BankReader interface {
	// FindBankByID retrieves a bank by its unique identifier.
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)

	// ListBanks retrieves banks ordered by name, optionally only the enabled ones.
	ListBanks(ctx context.Context, enabledOnly bool) ([]domain.Bank, error)
}

// BankWriter defines write operations for bank data
type BankWriter interface {
	// SaveBank persists a new bank. A duplicate code yields apperrors.ErrDuplicate.
	SaveBank(ctx context.Context, bank domain.Bank) error

	// UpdateBank updates code, name and enabled flag.
	UpdateBank(ctx context.Context, bank domain.Bank) error

	// DeleteBank removes a bank. Existing checkbooks yield apperrors.ErrHasDependents.
	DeleteBank(ctx context.Context, bankID string) error
}

// BankRepositoryFacade combines all bank-related repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
}
