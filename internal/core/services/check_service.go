package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cheque_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// checkService implements the check lifecycle: creation, updates, deletion and cash-in,
// always pairing the check write with the checkbook balance deltas it causes.
type checkService struct {
	BaseService
	checkRepo     portsrepo.CheckRepositoryFacade
	checkbookRepo portsrepo.CheckbookReader
	clock         func() time.Time
	location      *time.Location
	pageSize      int
	maxPageSize   int
}

// CheckServiceOption is a functional option for configuring the check service
type CheckServiceOption func(*checkService)

// WithClock overrides the time source used for cash-in stamps and the eligibility gate.
func WithClock(clock func() time.Time) CheckServiceOption {
	return func(s *checkService) {
		s.clock = clock
	}
}

// WithLocation sets the business timezone that decides which calendar day "today" is.
func WithLocation(loc *time.Location) CheckServiceOption {
	return func(s *checkService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithPageSizes sets the default and maximum page size of QueryChecks.
func WithPageSizes(def, max int) CheckServiceOption {
	return func(s *checkService) {
		if def > 0 {
			s.pageSize = def
		}
		if max > 0 {
			s.maxPageSize = max
		}
	}
}

// NewCheckService creates a new check service with the provided options
func NewCheckService(checkRepo portsrepo.CheckRepositoryFacade, checkbookRepo portsrepo.CheckbookReader, options ...CheckServiceOption) portssvc.CheckSvcFacade {
	svc := &checkService{
		checkRepo:     checkRepo,
		checkbookRepo: checkbookRepo,
		clock:         time.Now,
		location:      time.UTC,
		pageSize:      defaultPageSize,
		maxPageSize:   maxPageSize,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.pageSize > svc.maxPageSize {
		svc.pageSize = svc.maxPageSize
	}
	return svc
}

var _ portssvc.CheckSvcFacade = (*checkService)(nil)

func (s *checkService) today() domain.Date {
	return domain.DateOf(s.clock().In(s.location))
}

// ensureCashable is the cash-in eligibility gate: the due date must be strictly before today.
func (s *checkService) ensureCashable(due domain.Date) error {
	today := s.today()
	if !due.Before(today) {
		return fmt.Errorf("%w: due %s, today %s", apperrors.ErrIneligibleCashIn, due, today)
	}
	return nil
}

func (s *checkService) CreateCheck(ctx context.Context, req dto.CreateCheckRequest, userID string) (*domain.CheckDetail, error) {
	cb, err := s.checkbookRepo.FindCheckbookByID(ctx, req.CheckbookID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load checkbook for new check", slog.String("checkbook_id", req.CheckbookID))
		}
		return nil, err
	}

	n, err := ValidateNumberInRange(&cb.Checkbook, req.Number)
	if err != nil {
		s.LogWarn(ctx, err, "Check number rejected", slog.String("checkbook_id", cb.CheckbookID), slog.String("number", req.Number))
		return nil, err
	}
	number := CanonicalCheckNumber(n)

	issue, due, err := parseCheckDates(req.IssueDate, req.DueDate)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	payee := strings.TrimSpace(req.Payee)
	if payee == "" {
		return nil, fmt.Errorf("%w: payee is required", apperrors.ErrValidation)
	}
	status := domain.CheckPending
	if req.Status != nil {
		status = *req.Status
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}

	if err := s.ensureUniqueNumber(ctx, cb.CheckbookID, number, ""); err != nil {
		return nil, err
	}

	now := s.clock()
	check := domain.Check{
		CheckID:     uuid.NewString(),
		CheckbookID: cb.CheckbookID,
		Number:      number,
		IssueDate:   issue,
		DueDate:     due,
		Payee:       payee,
		Memo:        strings.TrimSpace(req.Memo),
		Amount:      req.Amount,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if status == domain.CheckCashed {
		cashedAt := now
		check.CashedAt = &cashedAt
	}

	if err := s.checkRepo.SaveCheck(ctx, check, balanceDeltas(nil, &check)); err != nil {
		if !isDomainError(err) {
			s.LogError(ctx, err, "Failed to save check", slog.String("check_id", check.CheckID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Check created",
		slog.String("check_id", check.CheckID),
		slog.String("checkbook_id", check.CheckbookID),
		slog.String("number", check.Number),
		slog.String("status", string(check.Status)))
	return s.GetCheckByID(ctx, check.CheckID)
}

func (s *checkService) UpdateCheck(ctx context.Context, checkID string, req dto.UpdateCheckRequest, userID string) (*domain.CheckDetail, error) {
	existing, err := s.GetCheckByID(ctx, checkID)
	if err != nil {
		return nil, err
	}
	old := existing.Check
	updated := existing.Check

	cb := existing.Checkbook
	checkbookChanged := req.CheckbookID != nil && *req.CheckbookID != old.CheckbookID
	if checkbookChanged {
		target, err := s.checkbookRepo.FindCheckbookByID(ctx, *req.CheckbookID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to load target checkbook", slog.String("checkbook_id", *req.CheckbookID))
			}
			return nil, err
		}
		if !target.IsActive {
			return nil, fmt.Errorf("%w: checkbook %s", apperrors.ErrInactive, target.Number)
		}
		cb = target.Checkbook
		updated.CheckbookID = cb.CheckbookID
	}

	numberChanged := false
	if req.Number != nil {
		n, err := ParseCheckNumber(*req.Number)
		if err != nil {
			return nil, err
		}
		if canonical := CanonicalCheckNumber(n); canonical != old.Number {
			updated.Number = canonical
			numberChanged = true
		}
	}
	if numberChanged || checkbookChanged {
		if _, err := ValidateNumberInRange(&cb, updated.Number); err != nil {
			s.LogWarn(ctx, err, "Check number rejected", slog.String("check_id", checkID), slog.String("number", updated.Number))
			return nil, err
		}
		if err := s.ensureUniqueNumber(ctx, cb.CheckbookID, updated.Number, checkID); err != nil {
			return nil, err
		}
	}

	if req.IssueDate != nil {
		if updated.IssueDate, err = parseDateField("issueDate", *req.IssueDate); err != nil {
			return nil, err
		}
	}
	if req.DueDate != nil {
		if updated.DueDate, err = parseDateField("dueDate", *req.DueDate); err != nil {
			return nil, err
		}
	}
	if updated.DueDate.Before(updated.IssueDate) {
		return nil, fmt.Errorf("%w: due date %s is before issue date %s", apperrors.ErrValidation, updated.DueDate, updated.IssueDate)
	}
	if req.Payee != nil {
		updated.Payee = strings.TrimSpace(*req.Payee)
		if updated.Payee == "" {
			return nil, fmt.Errorf("%w: payee is required", apperrors.ErrValidation)
		}
	}
	if req.Memo != nil {
		updated.Memo = strings.TrimSpace(*req.Memo)
	}
	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		updated.Amount = *req.Amount
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *req.Status)
		}
		updated.Status = *req.Status
	}

	now := s.clock()
	switch {
	case updated.Status == domain.CheckCashed && old.Status != domain.CheckCashed:
		if err := s.ensureCashable(updated.DueDate); err != nil {
			s.LogWarn(ctx, err, "Cash-in rejected", slog.String("check_id", checkID))
			return nil, err
		}
		cashedAt := now
		updated.CashedAt = &cashedAt
	case updated.Status != domain.CheckCashed:
		updated.CashedAt = nil
	}

	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID
	updated.Version = old.Version + 1

	if err := s.checkRepo.UpdateCheck(ctx, updated, old.Version, balanceDeltas(&old, &updated)); err != nil {
		if !isDomainError(err) {
			s.LogError(ctx, err, "Failed to update check", slog.String("check_id", checkID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Check updated",
		slog.String("check_id", checkID),
		slog.String("old_status", string(old.Status)),
		slog.String("new_status", string(updated.Status)))
	return s.GetCheckByID(ctx, checkID)
}

func (s *checkService) DeleteCheck(ctx context.Context, checkID string, userID string) error {
	existing, err := s.GetCheckByID(ctx, checkID)
	if err != nil {
		return err
	}
	check := existing.Check
	check.LastUpdatedAt = s.clock()
	check.LastUpdatedBy = userID

	if err := s.checkRepo.DeleteCheck(ctx, check, balanceDeltas(&existing.Check, nil)); err != nil {
		if !isDomainError(err) {
			s.LogError(ctx, err, "Failed to delete check", slog.String("check_id", checkID))
		}
		return err
	}
	s.LogInfo(ctx, "Check deleted", slog.String("check_id", checkID), slog.String("status", string(check.Status)))
	return nil
}

func (s *checkService) MarkCashed(ctx context.Context, checkID string, userID string) (*domain.CheckDetail, error) {
	existing, err := s.GetCheckByID(ctx, checkID)
	if err != nil {
		return nil, err
	}
	old := existing.Check
	if old.Status == domain.CheckCashed {
		return nil, fmt.Errorf("%w: check %s", apperrors.ErrAlreadyCashed, old.Number)
	}
	if err := s.ensureCashable(old.DueDate); err != nil {
		s.LogWarn(ctx, err, "Cash-in rejected", slog.String("check_id", checkID))
		return nil, err
	}

	now := s.clock()
	updated := old
	updated.Status = domain.CheckCashed
	updated.CashedAt = &now
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID
	updated.Version = old.Version + 1

	if err := s.checkRepo.UpdateCheck(ctx, updated, old.Version, balanceDeltas(&old, &updated)); err != nil {
		if !isDomainError(err) {
			s.LogError(ctx, err, "Failed to mark check as cashed", slog.String("check_id", checkID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Check cashed", slog.String("check_id", checkID), slog.String("amount", updated.Amount.String()))
	return s.GetCheckByID(ctx, checkID)
}

func (s *checkService) GetCheckByID(ctx context.Context, checkID string) (*domain.CheckDetail, error) {
	check, err := s.checkRepo.FindCheckByID(ctx, checkID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find check by ID", slog.String("check_id", checkID))
		}
		return nil, err
	}
	return check, nil
}

func (s *checkService) QueryChecks(ctx context.Context, filter domain.CheckFilter, page int, limit int) (*domain.CheckPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.pageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	// Keep (page-1)*limit inside int; such a page is past the end of any result set anyway.
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	items, total, err := s.checkRepo.ListChecks(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list checks", slog.Int("page", page), slog.Int("limit", limit))
		return nil, err
	}
	if items == nil {
		items = []domain.CheckDetail{}
	}

	// Totals are best-effort: the page is still served when the aggregate fails.
	totals := domain.ZeroStatusTotals()
	sums, err := s.checkRepo.SumAmountsByStatus(ctx, filter)
	if err != nil {
		s.LogWarn(ctx, err, "Check totals unavailable, returning zeroed totals")
	} else {
		for status, amount := range sums {
			totals[status] = amount
		}
	}

	return &domain.CheckPage{Items: items, Total: total, Page: page, Limit: limit, Totals: totals}, nil
}

func (s *checkService) ListAllChecks(ctx context.Context, filter domain.CheckFilter) ([]domain.CheckDetail, error) {
	checks, err := s.checkRepo.ListAllChecks(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list all checks")
		return nil, err
	}
	if checks == nil {
		return []domain.CheckDetail{}, nil
	}
	return checks, nil
}

func (s *checkService) ValidateCheckNumber(ctx context.Context, checkbookID string, number string) error {
	cb, err := s.checkbookRepo.FindCheckbookByID(ctx, checkbookID)
	if err != nil {
		return err
	}
	_, err = ValidateNumberInRange(&cb.Checkbook, number)
	return err
}

func (s *checkService) ensureUniqueNumber(ctx context.Context, checkbookID, number, excludeCheckID string) error {
	exists, err := s.checkRepo.CheckNumberExists(ctx, checkbookID, number, excludeCheckID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check number uniqueness", slog.String("checkbook_id", checkbookID))
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateNumber, number)
	}
	return nil
}

// balanceDeltas returns the signed change each checkbook balance must receive when a check
// goes from old to updated. A nil old means creation, a nil updated means deletion.
// A CASHED check is a debit on its checkbook, so leaving CASHED credits the old checkbook
// with the old amount and entering (or staying in) CASHED debits the new one with the new amount.
func balanceDeltas(old, updated *domain.Check) map[string]decimal.Decimal {
	deltas := make(map[string]decimal.Decimal, 2)
	if old != nil && old.Status == domain.CheckCashed {
		deltas[old.CheckbookID] = deltas[old.CheckbookID].Add(old.Amount)
	}
	if updated != nil && updated.Status == domain.CheckCashed {
		deltas[updated.CheckbookID] = deltas[updated.CheckbookID].Sub(updated.Amount)
	}
	for id, d := range deltas {
		if d.IsZero() {
			delete(deltas, id)
		}
	}
	return deltas
}

func parseCheckDates(issueRaw, dueRaw string) (domain.Date, domain.Date, error) {
	issue, err := parseDateField("issueDate", issueRaw)
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	due, err := parseDateField("dueDate", dueRaw)
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	if due.Before(issue) {
		return domain.Date{}, domain.Date{}, fmt.Errorf("%w: due date %s is before issue date %s", apperrors.ErrValidation, due, issue)
	}
	return issue, due, nil
}

func parseDateField(field, raw string) (domain.Date, error) {
	d, err := domain.ParseDate(strings.TrimSpace(raw))
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: %s: %v", apperrors.ErrValidation, field, err)
	}
	return d, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: amount %s has more than two decimals", apperrors.ErrValidation, amount)
	}
	return nil
}

// isDomainError reports whether err is an expected rule violation rather than an infra failure.
func isDomainError(err error) bool {
	for _, target := range []error{
		apperrors.ErrNotFound,
		apperrors.ErrValidation,
		apperrors.ErrDuplicate,
		apperrors.ErrConflict,
		apperrors.ErrInactive,
		apperrors.ErrOutOfRange,
		apperrors.ErrDuplicateNumber,
		apperrors.ErrIneligibleCashIn,
		apperrors.ErrAlreadyCashed,
		apperrors.ErrHasDependents,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
