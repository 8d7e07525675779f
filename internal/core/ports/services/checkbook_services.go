package services

import (
	"context"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
)

// CheckbookReaderSvc defines read operations for checkbook data
type CheckbookReaderSvc interface {
	GetCheckbookByID(ctx context.Context, checkbookID string) (*domain.CheckbookDetail, error)
	ListCheckbooks(ctx context.Context, filter domain.CheckbookFilter) ([]domain.CheckbookDetail, error)
}

// CheckbookWriterSvc defines write operations for checkbook data
type CheckbookWriterSvc interface {
	CreateCheckbook(ctx context.Context, req dto.CreateCheckbookRequest, userID string) (*domain.CheckbookDetail, error)
	UpdateCheckbook(ctx context.Context, checkbookID string, req dto.UpdateCheckbookRequest, userID string) (*domain.CheckbookDetail, error)

	// DeleteCheckbook removes a checkbook that no check references.
	DeleteCheckbook(ctx context.Context, checkbookID string) error

	// ReconcileBalance recomputes the current balance from the CASHED checks.
	ReconcileBalance(ctx context.Context, checkbookID string, userID string) (*domain.BalanceReconciliation, error)
}

// CheckbookSvcFacade combines all checkbook-related service interfaces
type CheckbookSvcFacade interface {
	CheckbookReaderSvc
	CheckbookWriterSvc
}
