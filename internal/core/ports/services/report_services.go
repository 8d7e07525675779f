package services

import (
	"context"
	"io"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
)

// ReportService defines operations for cash-flow reporting
type ReportService interface {
	// CashFlow pivots the filtered checks by due date and bank.
	CashFlow(ctx context.Context, filter domain.CheckFilter) (*domain.CashFlowPivot, error)

	// ExportCashFlow writes the detail and cash-flow spreadsheet for the filtered checks to w.
	ExportCashFlow(ctx context.Context, filter domain.CheckFilter, w io.Writer) error
}
