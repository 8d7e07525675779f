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

type bankService struct {
	BaseService
	bankRepo      portsrepo.BankRepositoryFacade
	checkbookRepo portsrepo.CheckbookReader
}

// NewBankService creates a bank service. checkbookRepo is used to refuse deleting banks in use.
func NewBankService(bankRepo portsrepo.BankRepositoryFacade, checkbookRepo portsrepo.CheckbookReader) portssvc.BankSvcFacade {
	return &bankService{bankRepo: bankRepo, checkbookRepo: checkbookRepo}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

func (s *bankService) CreateBank(ctx context.Context, req dto.CreateBankRequest, userID string) (*domain.Bank, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: code and name are required", apperrors.ErrValidation)
	}

	now := time.Now()
	bank := domain.Bank{
		BankID:    uuid.NewString(),
		Code:      code,
		Name:      name,
		IsEnabled: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if req.IsEnabled != nil {
		bank.IsEnabled = *req.IsEnabled
	}

	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save bank", slog.String("code", code))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Bank created", slog.String("bank_id", bank.BankID), slog.String("code", code))
	return &bank, nil
}

func (s *bankService) GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank by ID", slog.String("bank_id", bankID))
		}
		return nil, err
	}
	return bank, nil
}

func (s *bankService) ListBanks(ctx context.Context, enabledOnly bool) ([]domain.Bank, error) {
	banks, err := s.bankRepo.ListBanks(ctx, enabledOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, err
	}
	if banks == nil {
		return []domain.Bank{}, nil
	}
	return banks, nil
}

func (s *bankService) UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest, userID string) (*domain.Bank, error) {
	bank, err := s.GetBankByID(ctx, bankID)
	if err != nil {
		return nil, err
	}

	updated := *bank
	if req.Code != nil {
		updated.Code = strings.ToUpper(strings.TrimSpace(*req.Code))
		if updated.Code == "" {
			return nil, fmt.Errorf("%w: code must not be empty", apperrors.ErrValidation)
		}
	}
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
		if updated.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
		}
	}
	if req.IsEnabled != nil {
		updated.IsEnabled = *req.IsEnabled
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID
	updated.Version = bank.Version + 1

	if err := s.bankRepo.UpdateBank(ctx, updated); err != nil {
		if !isDomainError(err) {
			s.LogError(ctx, err, "Failed to update bank", slog.String("bank_id", bankID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Bank updated", slog.String("bank_id", bankID))
	return &updated, nil
}

func (s *bankService) DeleteBank(ctx context.Context, bankID string) error {
	if _, err := s.GetBankByID(ctx, bankID); err != nil {
		return err
	}
	count, err := s.checkbookRepo.CountCheckbooksByBank(ctx, bankID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count checkbooks of bank", slog.String("bank_id", bankID))
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: bank has %d checkbook(s)", apperrors.ErrHasDependents, count)
	}

	// The store re-checks the reference, so a checkbook created in between still blocks the delete.
	if err := s.bankRepo.DeleteBank(ctx, bankID); err != nil {
		if !isDomainError(err) {
			s.LogError(ctx, err, "Failed to delete bank", slog.String("bank_id", bankID))
		}
		return err
	}
	s.LogInfo(ctx, "Bank deleted", slog.String("bank_id", bankID))
	return nil
}
