// Package memory is an in-process entity store used for local runs and tests.
// One mutex guards every map, so a check write and its balance deltas are applied atomically.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_tracker_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Store keeps banks, checkbooks and checks in maps keyed by id.
type Store struct {
	mu         sync.RWMutex
	banks      map[string]domain.Bank
	checkbooks map[string]domain.Checkbook
	checks     map[string]domain.Check
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		banks:      make(map[string]domain.Bank),
		checkbooks: make(map[string]domain.Checkbook),
		checks:     make(map[string]domain.Check),
	}
}

// NewRepositoryProvider exposes one store through every repository port.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	s := NewStore()
	return portsrepo.RepositoryProvider{BankRepo: s, CheckbookRepo: s, CheckRepo: s}
}

var (
	_ portsrepo.BankRepositoryFacade      = (*Store)(nil)
	_ portsrepo.CheckbookRepositoryFacade = (*Store)(nil)
	_ portsrepo.CheckRepositoryFacade     = (*Store)(nil)
)

// --- banks ---

func (s *Store) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.banks[bankID]
	if !ok {
		return nil, fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, bankID)
	}
	return &b, nil
}

func (s *Store) ListBanks(ctx context.Context, enabledOnly bool) ([]domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	banks := make([]domain.Bank, 0, len(s.banks))
	for _, b := range s.banks {
		if enabledOnly && !b.IsEnabled {
			continue
		}
		banks = append(banks, b)
	}
	sort.Slice(banks, func(i, j int) bool { return banks[i].Name < banks[j].Name })
	return banks, nil
}

func (s *Store) SaveBank(ctx context.Context, bank domain.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bankCodeTaken(bank.Code, bank.BankID) {
		return fmt.Errorf("%w: bank code %s", apperrors.ErrDuplicate, bank.Code)
	}
	s.banks[bank.BankID] = bank
	return nil
}

func (s *Store) UpdateBank(ctx context.Context, bank domain.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banks[bank.BankID]; !ok {
		return fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, bank.BankID)
	}
	if s.bankCodeTaken(bank.Code, bank.BankID) {
		return fmt.Errorf("%w: bank code %s", apperrors.ErrDuplicate, bank.Code)
	}
	s.banks[bank.BankID] = bank
	return nil
}

func (s *Store) DeleteBank(ctx context.Context, bankID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banks[bankID]; !ok {
		return fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, bankID)
	}
	for _, cb := range s.checkbooks {
		if cb.BankID == bankID {
			return fmt.Errorf("%w: bank %s is referenced by checkbooks", apperrors.ErrHasDependents, bankID)
		}
	}
	delete(s.banks, bankID)
	return nil
}

func (s *Store) bankCodeTaken(code, exceptID string) bool {
	for id, b := range s.banks {
		if id != exceptID && strings.EqualFold(b.Code, code) {
			return true
		}
	}
	return false
}

// --- checkbooks ---

func (s *Store) FindCheckbookByID(ctx context.Context, checkbookID string) (*domain.CheckbookDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cb, ok := s.checkbooks[checkbookID]
	if !ok {
		return nil, fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, checkbookID)
	}
	return &domain.CheckbookDetail{Checkbook: cb, Bank: s.banks[cb.BankID]}, nil
}

func (s *Store) ListCheckbooks(ctx context.Context, filter domain.CheckbookFilter) ([]domain.CheckbookDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CheckbookDetail, 0, len(s.checkbooks))
	for _, cb := range s.checkbooks {
		if filter.BankID != "" && cb.BankID != filter.BankID {
			continue
		}
		if filter.ActiveOnly && !cb.IsActive {
			continue
		}
		out = append(out, domain.CheckbookDetail{Checkbook: cb, Bank: s.banks[cb.BankID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (s *Store) CountCheckbooksByBank(ctx context.Context, bankID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, cb := range s.checkbooks {
		if cb.BankID == bankID {
			n++
		}
	}
	return n, nil
}

func (s *Store) SaveCheckbook(ctx context.Context, checkbook domain.Checkbook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banks[checkbook.BankID]; !ok {
		return fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, checkbook.BankID)
	}
	if s.checkbookNumberTaken(checkbook.Number, checkbook.CheckbookID) {
		return fmt.Errorf("%w: checkbook number %s", apperrors.ErrDuplicate, checkbook.Number)
	}
	s.checkbooks[checkbook.CheckbookID] = checkbook
	return nil
}

// UpdateCheckbook keeps the stored balances; only the running-total writers move them.
func (s *Store) UpdateCheckbook(ctx context.Context, checkbook domain.Checkbook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.checkbooks[checkbook.CheckbookID]
	if !ok {
		return fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, checkbook.CheckbookID)
	}
	if _, ok := s.banks[checkbook.BankID]; !ok {
		return fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, checkbook.BankID)
	}
	if s.checkbookNumberTaken(checkbook.Number, checkbook.CheckbookID) {
		return fmt.Errorf("%w: checkbook number %s", apperrors.ErrDuplicate, checkbook.Number)
	}
	checkbook.InitialBalance = current.InitialBalance
	checkbook.CurrentBalance = current.CurrentBalance
	s.checkbooks[checkbook.CheckbookID] = checkbook
	return nil
}

func (s *Store) DeleteCheckbook(ctx context.Context, checkbookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checkbooks[checkbookID]; !ok {
		return fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, checkbookID)
	}
	for _, c := range s.checks {
		if c.CheckbookID == checkbookID {
			return fmt.Errorf("%w: checkbook %s is referenced by checks", apperrors.ErrHasDependents, checkbookID)
		}
	}
	delete(s.checkbooks, checkbookID)
	return nil
}

func (s *Store) ReconcileCheckbookBalance(ctx context.Context, checkbookID string, userID string, now time.Time) (*domain.BalanceReconciliation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cb, ok := s.checkbooks[checkbookID]
	if !ok {
		return nil, fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, checkbookID)
	}
	cashed := decimal.Zero
	for _, c := range s.checks {
		if c.CheckbookID == checkbookID && c.Status == domain.CheckCashed {
			cashed = cashed.Add(c.Amount)
		}
	}
	rec := &domain.BalanceReconciliation{
		CheckbookID:     checkbookID,
		PreviousBalance: cb.CurrentBalance,
		CurrentBalance:  cb.InitialBalance.Sub(cashed),
	}
	rec.Drift = rec.CurrentBalance.Sub(rec.PreviousBalance)

	cb.CurrentBalance = rec.CurrentBalance
	cb.LastUpdatedAt = now
	cb.LastUpdatedBy = userID
	s.checkbooks[checkbookID] = cb
	return rec, nil
}

func (s *Store) checkbookNumberTaken(number, exceptID string) bool {
	for id, cb := range s.checkbooks {
		if id != exceptID && cb.Number == number {
			return true
		}
	}
	return false
}

// --- checks ---

func (s *Store) FindCheckByID(ctx context.Context, checkID string) (*domain.CheckDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.checks[checkID]
	if !ok {
		return nil, fmt.Errorf("%w: check %s", apperrors.ErrNotFound, checkID)
	}
	d := s.detail(c)
	return &d, nil
}

func (s *Store) CheckNumberExists(ctx context.Context, checkbookID string, number string, excludeCheckID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.numberTaken(checkbookID, number, excludeCheckID), nil
}

func (s *Store) CountChecksByCheckbook(ctx context.Context, checkbookID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, c := range s.checks {
		if c.CheckbookID == checkbookID {
			n++
		}
	}
	return n, nil
}

func (s *Store) ListChecks(ctx context.Context, filter domain.CheckFilter, limit int, offset int) ([]domain.CheckDetail, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.filtered(filter)
	total := int64(len(all))
	if offset < 0 || offset >= len(all) {
		return []domain.CheckDetail{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (s *Store) ListAllChecks(ctx context.Context, filter domain.CheckFilter) ([]domain.CheckDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered(filter), nil
}

func (s *Store) SumAmountsByStatus(ctx context.Context, filter domain.CheckFilter) (map[domain.CheckStatus]decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sums := make(map[domain.CheckStatus]decimal.Decimal)
	for _, d := range s.filtered(filter) {
		sums[d.Status] = sums[d.Status].Add(d.Amount)
	}
	return sums, nil
}

func (s *Store) SaveCheck(ctx context.Context, check domain.Check, balanceChanges map[string]decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.checkbooks[check.CheckbookID]; !ok {
		return fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, check.CheckbookID)
	}
	if _, ok := s.checks[check.CheckID]; ok {
		return fmt.Errorf("%w: check %s", apperrors.ErrDuplicate, check.CheckID)
	}
	if s.numberTaken(check.CheckbookID, check.Number, "") {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateNumber, check.Number)
	}
	if err := s.checkDeltas(balanceChanges); err != nil {
		return err
	}
	s.checks[check.CheckID] = check
	s.applyDeltas(balanceChanges, check.LastUpdatedBy, check.LastUpdatedAt)
	return nil
}

func (s *Store) UpdateCheck(ctx context.Context, check domain.Check, expectedVersion int64, balanceChanges map[string]decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.checks[check.CheckID]
	if !ok {
		return fmt.Errorf("%w: check %s", apperrors.ErrNotFound, check.CheckID)
	}
	if current.Version != expectedVersion {
		return fmt.Errorf("%w: check %s is at version %d, expected %d", apperrors.ErrConflict, check.CheckID, current.Version, expectedVersion)
	}
	if _, ok := s.checkbooks[check.CheckbookID]; !ok {
		return fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, check.CheckbookID)
	}
	if s.numberTaken(check.CheckbookID, check.Number, check.CheckID) {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateNumber, check.Number)
	}
	if err := s.checkDeltas(balanceChanges); err != nil {
		return err
	}
	s.checks[check.CheckID] = check
	s.applyDeltas(balanceChanges, check.LastUpdatedBy, check.LastUpdatedAt)
	return nil
}

func (s *Store) DeleteCheck(ctx context.Context, check domain.Check, balanceChanges map[string]decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.checks[check.CheckID]
	if !ok {
		return fmt.Errorf("%w: check %s", apperrors.ErrNotFound, check.CheckID)
	}
	if current.Version != check.Version {
		return fmt.Errorf("%w: check %s is at version %d, expected %d", apperrors.ErrConflict, check.CheckID, current.Version, check.Version)
	}
	if err := s.checkDeltas(balanceChanges); err != nil {
		return err
	}
	delete(s.checks, check.CheckID)
	s.applyDeltas(balanceChanges, check.LastUpdatedBy, check.LastUpdatedAt)
	return nil
}

// checkDeltas fails before anything is written when a delta targets an unknown checkbook.
func (s *Store) checkDeltas(deltas map[string]decimal.Decimal) error {
	for id := range deltas {
		if _, ok := s.checkbooks[id]; !ok {
			return fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, id)
		}
	}
	return nil
}

func (s *Store) applyDeltas(deltas map[string]decimal.Decimal, userID string, now time.Time) {
	for id, delta := range deltas {
		cb := s.checkbooks[id]
		cb.CurrentBalance = cb.CurrentBalance.Add(delta)
		cb.LastUpdatedAt = now
		cb.LastUpdatedBy = userID
		s.checkbooks[id] = cb
	}
}

func (s *Store) numberTaken(checkbookID, number, excludeCheckID string) bool {
	for id, c := range s.checks {
		if id != excludeCheckID && c.CheckbookID == checkbookID && c.Number == number {
			return true
		}
	}
	return false
}

func (s *Store) detail(c domain.Check) domain.CheckDetail {
	cb := s.checkbooks[c.CheckbookID]
	return domain.CheckDetail{Check: c, Checkbook: cb, Bank: s.banks[cb.BankID]}
}

// filtered returns matching checks ordered by due date, then numerically by number.
func (s *Store) filtered(f domain.CheckFilter) []domain.CheckDetail {
	search := strings.ToLower(f.Search)
	out := make([]domain.CheckDetail, 0)
	for _, c := range s.checks {
		if f.CheckbookID != "" && c.CheckbookID != f.CheckbookID {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if !f.DueFrom.IsZero() && c.DueDate.Before(f.DueFrom) {
			continue
		}
		if !f.DueTo.IsZero() && c.DueDate.After(f.DueTo) {
			continue
		}
		d := s.detail(c)
		if f.BankID != "" && d.Checkbook.BankID != f.BankID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Number), search) &&
			!strings.Contains(strings.ToLower(c.Payee), search) &&
			!strings.Contains(strings.ToLower(c.Memo), search) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if cmp := out[i].DueDate.Compare(out[j].DueDate); cmp != 0 {
			return cmp < 0
		}
		ni, _ := strconv.ParseInt(out[i].Number, 10, 64)
		nj, _ := strconv.ParseInt(out[j].Number, 10, 64)
		if ni != nj {
			return ni < nj
		}
		return out[i].CheckID < out[j].CheckID
	})
	return out
}
