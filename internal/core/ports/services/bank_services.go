package services

import (
	"context"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
)

// BankReaderSvc defines read operations for bank data
type BankReaderSvc interface {
	// GetBankByID retrieves a bank by its unique identifier.
	GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error)

	// ListBanks retrieves banks, optionally only the enabled ones.
	ListBanks(ctx context.Context, enabledOnly bool) ([]domain.Bank, error)
}

// BankWriterSvc defines write operations for bank data
type BankWriterSvc interface {
	CreateBank(ctx context.Context, req dto.CreateBankRequest, userID string) (*domain.Bank, error)
	UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest, userID string) (*domain.Bank, error)

	// DeleteBank removes a bank that no checkbook references.
	DeleteBank(ctx context.Context, bankID string) error
}

// BankSvcFacade combines all bank-related service interfaces
type BankSvcFacade interface {
	BankReaderSvc
	BankWriterSvc
}
