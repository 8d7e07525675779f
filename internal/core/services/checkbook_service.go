package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
	"github.com/google/uuid"
)

type checkbookService struct {
	BaseService
	checkbookRepo portsrepo.CheckbookRepositoryFacade
	bankRepo      portsrepo.BankReader
	checkRepo     portsrepo.CheckReader
}

// NewCheckbookService creates a checkbook service.
func NewCheckbookService(checkbookRepo portsrepo.CheckbookRepositoryFacade, bankRepo portsrepo.BankReader, checkRepo portsrepo.CheckReader) portssvc.CheckbookSvcFacade {
	return &checkbookService{checkbookRepo: checkbookRepo, bankRepo: bankRepo, checkRepo: checkRepo}
}

var _ portssvc.CheckbookSvcFacade = (*checkbookService)(nil)

func (s *checkbookService) CreateCheckbook(ctx context.Context, req dto.CreateCheckbookRequest, userID string) (*domain.CheckbookDetail, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, req.BankID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load bank for checkbook", slog.String("bank_id", req.BankID))
		}
		return nil, err
	}
	if !bank.IsEnabled {
		return nil, fmt.Errorf("%w: bank %s is disabled", apperrors.ErrInactive, bank.Code)
	}
	if err := validateRange(req.RangeFrom, req.RangeTo); err != nil {
		return nil, err
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance must not be negative", apperrors.ErrValidation)
	}
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, fmt.Errorf("%w: number is required", apperrors.ErrValidation)
	}

	now := time.Now()
	cb := domain.Checkbook{
		CheckbookID:    uuid.NewString(),
		Number:         number,
		BankID:         bank.BankID,
		InitialBalance: req.InitialBalance,
		CurrentBalance: req.InitialBalance,
		IsActive:       true,
		RangeFrom:      req.RangeFrom,
		RangeTo:        req.RangeTo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if req.IsActive != nil {
		cb.IsActive = *req.IsActive
	}

	if err := s.checkbookRepo.SaveCheckbook(ctx, cb); err != nil {
		if !isDomainError(err) {
			s.LogError(ctx, err, "Failed to save checkbook", slog.String("number", number))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Checkbook created", slog.String("checkbook_id", cb.CheckbookID), slog.String("bank_id", bank.BankID))
	return &domain.CheckbookDetail{Checkbook: cb, Bank: *bank}, nil
}

func (s *checkbookService) GetCheckbookByID(ctx context.Context, checkbookID string) (*domain.CheckbookDetail, error) {
	cb, err := s.checkbookRepo.FindCheckbookByID(ctx, checkbookID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find checkbook by ID", slog.String("checkbook_id", checkbookID))
		}
		return nil, err
	}
	return cb, nil
}

func (s *checkbookService) ListCheckbooks(ctx context.Context, filter domain.CheckbookFilter) ([]domain.CheckbookDetail, error) {
	cbs, err := s.checkbookRepo.ListCheckbooks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list checkbooks")
		return nil, err
	}
	if cbs == nil {
		return []domain.CheckbookDetail{}, nil
	}
	return cbs, nil
}

// UpdateCheckbook changes number, bank, active flag and range. Narrowing the range is
// allowed; checks already issued outside it keep their numbers.
func (s *checkbookService) UpdateCheckbook(ctx context.Context, checkbookID string, req dto.UpdateCheckbookRequest, userID string) (*domain.CheckbookDetail, error) {
	existing, err := s.GetCheckbookByID(ctx, checkbookID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Number != nil {
		updated.Number = strings.TrimSpace(*req.Number)
		if updated.Number == "" {
			return nil, fmt.Errorf("%w: number must not be empty", apperrors.ErrValidation)
		}
	}
	if req.BankID != nil && *req.BankID != existing.BankID {
		bank, err := s.bankRepo.FindBankByID(ctx, *req.BankID)
		if err != nil {
			return nil, err
		}
		if !bank.IsEnabled {
			return nil, fmt.Errorf("%w: bank %s is disabled", apperrors.ErrInactive, bank.Code)
		}
		updated.BankID = bank.BankID
		updated.Bank = *bank
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	if req.RangeFrom != nil {
		updated.RangeFrom = *req.RangeFrom
	}
	if req.RangeTo != nil {
		updated.RangeTo = *req.RangeTo
	}
	if err := validateRange(updated.RangeFrom, updated.RangeTo); err != nil {
		return nil, err
	}

	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID
	updated.Version = existing.Version + 1

	if err := s.checkbookRepo.UpdateCheckbook(ctx, updated.Checkbook); err != nil {
		if !isDomainError(err) {
			s.LogError(ctx, err, "Failed to update checkbook", slog.String("checkbook_id", checkbookID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Checkbook updated", slog.String("checkbook_id", checkbookID))
	// Balance may have moved concurrently, reload it.
	return s.GetCheckbookByID(ctx, checkbookID)
}

func (s *checkbookService) DeleteCheckbook(ctx context.Context, checkbookID string) error {
	if _, err := s.GetCheckbookByID(ctx, checkbookID); err != nil {
		return err
	}
	count, err := s.checkRepo.CountChecksByCheckbook(ctx, checkbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count checks of checkbook", slog.String("checkbook_id", checkbookID))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: checkbook has %d check(s)", apperrors.ErrHasDependents, count)
	}
	if err := s.checkbookRepo.DeleteCheckbook(ctx, checkbookID); err != nil {
		if !isDomainError(err) {
			s.LogError(ctx, err, "Failed to delete checkbook", slog.String("checkbook_id", checkbookID))
		}
		return err
	}
	s.LogInfo(ctx, "Checkbook deleted", slog.String("checkbook_id", checkbookID))
	return nil
}

func (s *checkbookService) ReconcileBalance(ctx context.Context, checkbookID string, userID string) (*domain.BalanceReconciliation, error) {
	rec, err := s.checkbookRepo.ReconcileCheckbookBalance(ctx, checkbookID, userID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to reconcile checkbook balance", slog.String("checkbook_id", checkbookID))
		}
		return nil, err
	}
	if !rec.Drift.IsZero() {
		s.GetLogger(ctx).Warn("Checkbook balance drift corrected",
			slog.String("checkbook_id", checkbookID),
			slog.String("previous", rec.PreviousBalance.String()),
			slog.String("current", rec.CurrentBalance.String()),
			slog.String("drift", rec.Drift.String()))
	}
	return rec, nil
}

func validateRange(from, to int64) error {
	if from <= 0 || to <= 0 {
		return fmt.Errorf("%w: range bounds must be positive", apperrors.ErrValidation)
	}
	if from >= to {
		return fmt.Errorf("%w: rangeFrom must be lower than rangeTo", apperrors.ErrValidation)
	}
	return nil
}
