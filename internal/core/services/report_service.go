package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/cheque_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_tracker_app/internal/report"
	"golang.org/x/sync/singleflight"
)

// reportService builds cash-flow pivots and spreadsheet exports on top of the check query path.
type reportService struct {
	BaseService
	checks   portssvc.CheckReaderSvc
	location *time.Location
	group    singleflight.Group
}

// exportTimeout bounds the shared export work, which no longer follows any single caller's context.
const exportTimeout = 2 * time.Minute

// ReportServiceOption is a functional option for configuring the report service
type ReportServiceOption func(*reportService)

// WithReportLocation sets the timezone used for the "generated at" stamp of exports.
func WithReportLocation(loc *time.Location) ReportServiceOption {
	return func(s *reportService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewReportService creates a new report service
func NewReportService(checks portssvc.CheckReaderSvc, options ...ReportServiceOption) portssvc.ReportService {
	svc := &reportService{checks: checks, location: time.UTC}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportService = (*reportService)(nil)

func (s *reportService) CashFlow(ctx context.Context, filter domain.CheckFilter) (*domain.CashFlowPivot, error) {
	checks, err := s.checks.ListAllChecks(ctx, filter)
	if err != nil {
		return nil, err
	}
	pivot := AggregateCashFlow(checks)
	s.LogDebug(ctx, "Cash flow aggregated", slog.Int("checks", len(checks)), slog.Int("rows", len(pivot.Rows)))
	return &pivot, nil
}

// ExportCashFlow renders the workbook once per distinct filter even when several requests
// ask for it at the same time; every caller gets its own copy of the bytes.
// The shared render does not inherit the first caller's cancellation.
func (s *reportService) ExportCashFlow(ctx context.Context, filter domain.CheckFilter, w io.Writer) error {
	v, err, shared := s.group.Do(filterKey(filter), func() (any, error) {
		workCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), exportTimeout)
		defer cancel()

		checks, err := s.checks.ListAllChecks(workCtx, filter)
		if err != nil {
			return nil, err
		}
		pivot := AggregateCashFlow(checks)

		var buf bytes.Buffer
		meta := report.Meta{GeneratedAt: time.Now().In(s.location)}
		if err := report.WriteCashFlowWorkbook(&buf, checks, pivot, meta); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build cash flow export")
		return err
	}

	// This caller may have gone away while the shared render was running.
	if err := ctx.Err(); err != nil {
		s.LogWarn(ctx, err, "Cash flow export abandoned by caller")
		return err
	}

	data := v.([]byte)
	s.LogInfo(ctx, "Cash flow export built", slog.Int("bytes", len(data)), slog.Bool("shared", shared))
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func filterKey(f domain.CheckFilter) string {
	var from, to string
	if !f.DueFrom.IsZero() {
		from = f.DueFrom.String()
	}
	if !f.DueTo.IsZero() {
		to = f.DueTo.String()
	}
	return fmt.Sprintf("%q|%s|%s|%s|%s|%s", f.Search, f.CheckbookID, f.BankID, f.Status, from, to)
}
