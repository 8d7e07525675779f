package services_test

import (
	"bytes"
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/cheque_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_tracker_app/internal/core/services"
	"github.com/SscSPs/cheque_tracker_app/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockChecks *MockCheckReaderSvc
	service    portssvc.ReportService
	checks     []domain.CheckDetail
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockChecks = new(MockCheckReaderSvc)
	suite.service = services.NewReportService(suite.mockChecks)
	due := domain.NewDate(2024, time.May, 10)
	suite.checks = []domain.CheckDetail{
		detail("b1", "Alpha Bank", due, "100"),
		detail("b2", "Beta Bank", due, "40"),
		detail("b1", "Alpha Bank", due.AddDays(1), "60"),
	}
	for i := range suite.checks {
		suite.checks[i].Number = strconv.Itoa(i + 1)
		suite.checks[i].Status = domain.CheckPending
	}
}

func (suite *ReportServiceTestSuite) TestCashFlow() {
	ctx := context.Background()
	filter := domain.CheckFilter{Status: domain.CheckPending}
	suite.mockChecks.On("ListAllChecks", ctx, filter).Return(suite.checks, nil).Once()

	pivot, err := suite.service.CashFlow(ctx, filter)

	suite.Require().NoError(err)
	suite.Equal([]string{"Alpha Bank", "Beta Bank"}, pivot.Banks)
	suite.Require().Len(pivot.Rows, 2)
	suite.True(decimal.RequireFromString("40").Equal(pivot.Rows[0].Cells["Beta Bank"]))
	suite.True(pivot.Rows[1].Cells["Beta Bank"].IsZero())
	suite.mockChecks.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestCashFlow_Error() {
	ctx := context.Background()
	suite.mockChecks.On("ListAllChecks", ctx, domain.CheckFilter{}).Return(nil, assert.AnError).Once()

	pivot, err := suite.service.CashFlow(ctx, domain.CheckFilter{})

	suite.ErrorIs(err, assert.AnError)
	suite.Nil(pivot)
}

func (suite *ReportServiceTestSuite) TestExportCashFlow_WritesWorkbook() {
	ctx := context.Background()
	suite.mockChecks.On("ListAllChecks", mock.Anything, domain.CheckFilter{}).Return(suite.checks, nil).Once()

	var buf bytes.Buffer
	suite.Require().NoError(suite.service.ExportCashFlow(ctx, domain.CheckFilter{}, &buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	suite.Require().NoError(err)
	defer f.Close()
	suite.Equal([]string{report.DetailSheet, report.CashFlowSheet}, f.GetSheetList())
}

func (suite *ReportServiceTestSuite) TestExportCashFlow_ConcurrentCallersEachGetAWorkbook() {
	suite.mockChecks.On("ListAllChecks", mock.Anything, domain.CheckFilter{}).Return(suite.checks, nil)

	const callers = 8
	buffers := make([]bytes.Buffer, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = suite.service.ExportCashFlow(context.Background(), domain.CheckFilter{}, &buffers[i])
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		suite.Require().NoError(errs[i])
		f, err := excelize.OpenReader(bytes.NewReader(buffers[i].Bytes()))
		suite.Require().NoError(err, "caller %d", i)
		rows, err := f.GetRows(report.CashFlowSheet)
		suite.Require().NoError(err)
		suite.NotEmpty(rows)
		_ = f.Close()
	}
}

func (suite *ReportServiceTestSuite) TestExportCashFlow_ErrorWritesNothing() {
	ctx := context.Background()
	suite.mockChecks.On("ListAllChecks", mock.Anything, domain.CheckFilter{}).Return(nil, assert.AnError).Once()

	var buf bytes.Buffer
	err := suite.service.ExportCashFlow(ctx, domain.CheckFilter{}, &buf)

	suite.ErrorIs(err, assert.AnError)
	suite.Zero(buf.Len())
}

func (suite *ReportServiceTestSuite) TestExportCashFlow_CancelledCallerDoesNotFailOthers() {
	filter := domain.CheckFilter{BankID: "b1"}
	started := make(chan struct{})
	release := make(chan struct{})
	var startOnce sync.Once
	var workErr error
	suite.mockChecks.On("ListAllChecks", mock.Anything, filter).
		Run(func(args mock.Arguments) {
			startOnce.Do(func() { close(started) })
			<-release
			workErr = args.Get(0).(context.Context).Err()
		}).
		Return(suite.checks, nil)

	ctxA, cancelA := context.WithCancel(context.Background())
	var bufA, bufB bytes.Buffer
	var errA, errB error
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		errA = suite.service.ExportCashFlow(ctxA, filter, &bufA)
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		errB = suite.service.ExportCashFlow(context.Background(), filter, &bufB)
	}()
	// Give the second caller time to join the in-flight render.
	time.Sleep(50 * time.Millisecond)

	cancelA()
	close(release)
	wg.Wait()

	suite.NoError(workErr, "shared render must not see the first caller's cancellation")
	suite.ErrorIs(errA, context.Canceled)
	suite.Zero(bufA.Len())

	suite.Require().NoError(errB)
	f, err := excelize.OpenReader(bytes.NewReader(bufB.Bytes()))
	suite.Require().NoError(err)
	defer f.Close()
	suite.Equal([]string{report.DetailSheet, report.CashFlowSheet}, f.GetSheetList())
}

func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
