package services

import (
	"context"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
)

// CheckReaderSvc defines read operations for check data
type CheckReaderSvc interface {
	// GetCheckByID retrieves a check joined with its checkbook and bank.
	GetCheckByID(ctx context.Context, checkID string) (*domain.CheckDetail, error)

	// QueryChecks returns one page of the filtered set plus per-status totals of the whole set.
	// Totals are best-effort and fall back to zero when they cannot be computed.
	QueryChecks(ctx context.Context, filter domain.CheckFilter, page int, limit int) (*domain.CheckPage, error)

	// ListAllChecks returns the whole filtered set, ordered by due date.
	ListAllChecks(ctx context.Context, filter domain.CheckFilter) ([]domain.CheckDetail, error)
}

// CheckWriterSvc defines the check lifecycle transitions
type CheckWriterSvc interface {
	CreateCheck(ctx context.Context, req dto.CreateCheckRequest, userID string) (*domain.CheckDetail, error)
	UpdateCheck(ctx context.Context, checkID string, req dto.UpdateCheckRequest, userID string) (*domain.CheckDetail, error)
	DeleteCheck(ctx context.Context, checkID string, userID string) error

	// MarkCashed moves a PENDING or VOID check whose due date has passed to CASHED.
	MarkCashed(ctx context.Context, checkID string, userID string) (*domain.CheckDetail, error)
}

// CheckNumberValidatorSvc validates a candidate number against a checkbook.
type CheckNumberValidatorSvc interface {
	// ValidateCheckNumber fails with ErrInactive or ErrOutOfRange. It has no side effects.
	ValidateCheckNumber(ctx context.Context, checkbookID string, number string) error
}

// CheckSvcFacade combines all check-related service interfaces
type CheckSvcFacade interface {
	CheckReaderSvc
	CheckWriterSvc
	CheckNumberValidatorSvc
}
