package services_test

import (
	"context"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CheckRepository ---
type MockCheckRepository struct {
	mock.Mock
}

func (m *MockCheckRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.CheckDetail, error) {
	args := m.Called(ctx, checkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckDetail), args.Error(1)
}

func (m *MockCheckRepository) CheckNumberExists(ctx context.Context, checkbookID string, number string, excludeCheckID string) (bool, error) {
	args := m.Called(ctx, checkbookID, number, excludeCheckID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCheckRepository) CountChecksByCheckbook(ctx context.Context, checkbookID string) (int64, error) {
	args := m.Called(ctx, checkbookID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCheckRepository) ListChecks(ctx context.Context, filter domain.CheckFilter, limit int, offset int) ([]domain.CheckDetail, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.CheckDetail), args.Get(1).(int64), args.Error(2)
}

func (m *MockCheckRepository) ListAllChecks(ctx context.Context, filter domain.CheckFilter) ([]domain.CheckDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckDetail), args.Error(1)
}

func (m *MockCheckRepository) SumAmountsByStatus(ctx context.Context, filter domain.CheckFilter) (map[domain.CheckStatus]decimal.Decimal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.CheckStatus]decimal.Decimal), args.Error(1)
}

func (m *MockCheckRepository) SaveCheck(ctx context.Context, check domain.Check, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, check, balanceChanges)
	return args.Error(0)
}

func (m *MockCheckRepository) UpdateCheck(ctx context.Context, check domain.Check, expectedVersion int64, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, check, expectedVersion, balanceChanges)
	return args.Error(0)
}

func (m *MockCheckRepository) DeleteCheck(ctx context.Context, check domain.Check, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, check, balanceChanges)
	return args.Error(0)
}

// --- Mock CheckbookReader ---
type MockCheckbookReader struct {
	mock.Mock
}

func (m *MockCheckbookReader) FindCheckbookByID(ctx context.Context, checkbookID string) (*domain.CheckbookDetail, error) {
	args := m.Called(ctx, checkbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckbookDetail), args.Error(1)
}

func (m *MockCheckbookReader) ListCheckbooks(ctx context.Context, filter domain.CheckbookFilter) ([]domain.CheckbookDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckbookDetail), args.Error(1)
}

func (m *MockCheckbookReader) CountCheckbooksByBank(ctx context.Context, bankID string) (int64, error) {
	args := m.Called(ctx, bankID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CheckReaderSvc ---
type MockCheckReaderSvc struct {
	mock.Mock
}

func (m *MockCheckReaderSvc) GetCheckByID(ctx context.Context, checkID string) (*domain.CheckDetail, error) {
	args := m.Called(ctx, checkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckDetail), args.Error(1)
}

func (m *MockCheckReaderSvc) QueryChecks(ctx context.Context, filter domain.CheckFilter, page int, limit int) (*domain.CheckPage, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckPage), args.Error(1)
}

func (m *MockCheckReaderSvc) ListAllChecks(ctx context.Context, filter domain.CheckFilter) ([]domain.CheckDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckDetail), args.Error(1)
}
