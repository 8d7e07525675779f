package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock BankService ---
type MockBankService struct {
	mock.Mock
}

func (m *MockBankService) GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankService) ListBanks(ctx context.Context, enabledOnly bool) ([]domain.Bank, error) {
	args := m.Called(ctx, enabledOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bank), args.Error(1)
}

func (m *MockBankService) CreateBank(ctx context.Context, req dto.CreateBankRequest, userID string) (*domain.Bank, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankService) UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest, userID string) (*domain.Bank, error) {
	args := m.Called(ctx, bankID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankService) DeleteBank(ctx context.Context, bankID string) error {
	args := m.Called(ctx, bankID)
	return args.Error(0)
}

// --- Mock CheckbookService ---
type MockCheckbookService struct {
	mock.Mock
}

func (m *MockCheckbookService) GetCheckbookByID(ctx context.Context, checkbookID string) (*domain.CheckbookDetail, error) {
	args := m.Called(ctx, checkbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckbookDetail), args.Error(1)
}

func (m *MockCheckbookService) ListCheckbooks(ctx context.Context, filter domain.CheckbookFilter) ([]domain.CheckbookDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckbookDetail), args.Error(1)
}

func (m *MockCheckbookService) CreateCheckbook(ctx context.Context, req dto.CreateCheckbookRequest, userID string) (*domain.CheckbookDetail, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckbookDetail), args.Error(1)
}

func (m *MockCheckbookService) UpdateCheckbook(ctx context.Context, checkbookID string, req dto.UpdateCheckbookRequest, userID string) (*domain.CheckbookDetail, error) {
	args := m.Called(ctx, checkbookID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckbookDetail), args.Error(1)
}

func (m *MockCheckbookService) DeleteCheckbook(ctx context.Context, checkbookID string) error {
	args := m.Called(ctx, checkbookID)
	return args.Error(0)
}

func (m *MockCheckbookService) ReconcileBalance(ctx context.Context, checkbookID string, userID string) (*domain.BalanceReconciliation, error) {
	args := m.Called(ctx, checkbookID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceReconciliation), args.Error(1)
}

// --- Mock CheckService ---
type MockCheckService struct {
	mock.Mock
}

func (m *MockCheckService) GetCheckByID(ctx context.Context, checkID string) (*domain.CheckDetail, error) {
	args := m.Called(ctx, checkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckDetail), args.Error(1)
}

func (m *MockCheckService) QueryChecks(ctx context.Context, filter domain.CheckFilter, page int, limit int) (*domain.CheckPage, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckPage), args.Error(1)
}

func (m *MockCheckService) ListAllChecks(ctx context.Context, filter domain.CheckFilter) ([]domain.CheckDetail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CheckDetail), args.Error(1)
}

func (m *MockCheckService) CreateCheck(ctx context.Context, req dto.CreateCheckRequest, userID string) (*domain.CheckDetail, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckDetail), args.Error(1)
}

func (m *MockCheckService) UpdateCheck(ctx context.Context, checkID string, req dto.UpdateCheckRequest, userID string) (*domain.CheckDetail, error) {
	args := m.Called(ctx, checkID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckDetail), args.Error(1)
}

func (m *MockCheckService) DeleteCheck(ctx context.Context, checkID string, userID string) error {
	args := m.Called(ctx, checkID, userID)
	return args.Error(0)
}

func (m *MockCheckService) MarkCashed(ctx context.Context, checkID string, userID string) (*domain.CheckDetail, error) {
	args := m.Called(ctx, checkID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckDetail), args.Error(1)
}

func (m *MockCheckService) ValidateCheckNumber(ctx context.Context, checkbookID string, number string) error {
	args := m.Called(ctx, checkbookID, number)
	return args.Error(0)
}

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) CashFlow(ctx context.Context, filter domain.CheckFilter) (*domain.CashFlowPivot, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlowPivot), args.Error(1)
}

func (m *MockReportService) ExportCashFlow(ctx context.Context, filter domain.CheckFilter, w io.Writer) error {
	args := m.Called(ctx, filter, w)
	return args.Error(0)
}
