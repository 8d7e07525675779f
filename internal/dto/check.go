package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCheckRequest defines the data needed to issue a new check.
// Dates are calendar dates (YYYY-MM-DD) with no zone.
type CreateCheckRequest struct {
	CheckbookID string              `json:"checkbookID" binding:"required"`
	Number      string              `json:"number" binding:"required,max=20"`
	IssueDate   string              `json:"issueDate" binding:"required,yyyymmdd"`
	DueDate     string              `json:"dueDate" binding:"required,yyyymmdd"`
	Payee       string              `json:"payee" binding:"required,max=200"`
	Memo        string              `json:"memo" binding:"max=500"`
	Amount      decimal.Decimal     `json:"amount" binding:"required,gt=0"`
	Status      *domain.CheckStatus `json:"status" binding:"omitempty,oneof=PENDING CASHED VOID"`
}

// UpdateCheckRequest defines the data allowed for updating a check.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCheckRequest struct {
	CheckbookID *string             `json:"checkbookID"`
	Number      *string             `json:"number" binding:"omitempty,max=20"`
	IssueDate   *string             `json:"issueDate" binding:"omitempty,yyyymmdd"`
	DueDate     *string             `json:"dueDate" binding:"omitempty,yyyymmdd"`
	Payee       *string             `json:"payee" binding:"omitempty,max=200"`
	Memo        *string             `json:"memo" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal    `json:"amount" binding:"omitempty,gt=0"`
	Status      *domain.CheckStatus `json:"status" binding:"omitempty,oneof=PENDING CASHED VOID"`
}

// CheckFilterParams defines the filter query parameters shared by listing and export.
type CheckFilterParams struct {
	Search      string `form:"search"`
	CheckbookID string `form:"checkbookID"`
	BankID      string `form:"bankID"`
	Status      string `form:"status" binding:"omitempty,oneof=PENDING CASHED VOID"`
	DueFrom     string `form:"dueFrom" binding:"omitempty,yyyymmdd"`
	DueTo       string `form:"dueTo" binding:"omitempty,yyyymmdd"`
}

// ListChecksParams defines query parameters for listing checks.
type ListChecksParams struct {
	CheckFilterParams
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1"`
}

// ToFilter converts query parameters into a domain filter.
func (p CheckFilterParams) ToFilter() (domain.CheckFilter, error) {
	filter := domain.CheckFilter{
		Search:      strings.TrimSpace(p.Search),
		CheckbookID: p.CheckbookID,
		BankID:      p.BankID,
		Status:      domain.CheckStatus(p.Status),
	}
	if p.DueFrom != "" {
		d, err := domain.ParseDate(p.DueFrom)
		if err != nil {
			return filter, fmt.Errorf("%w: dueFrom: %v", apperrors.ErrValidation, err)
		}
		filter.DueFrom = d
	}
	if p.DueTo != "" {
		d, err := domain.ParseDate(p.DueTo)
		if err != nil {
			return filter, fmt.Errorf("%w: dueTo: %v", apperrors.ErrValidation, err)
		}
		filter.DueTo = d
	}
	if !filter.DueFrom.IsZero() && !filter.DueTo.IsZero() && filter.DueTo.Before(filter.DueFrom) {
		return filter, fmt.Errorf("%w: dueTo must not be before dueFrom", apperrors.ErrValidation)
	}
	return filter, nil
}

// CheckResponse defines the data returned for a check.
type CheckResponse struct {
	CheckID       string             `json:"checkID"`
	CheckbookID   string             `json:"checkbookID"`
	Number        string             `json:"number"`
	IssueDate     domain.Date        `json:"issueDate"`
	DueDate       domain.Date        `json:"dueDate"`
	Payee         string             `json:"payee"`
	Memo          string             `json:"memo"`
	Amount        decimal.Decimal    `json:"amount"`
	Status        domain.CheckStatus `json:"status"`
	CashedAt      *time.Time         `json:"cashedAt"`
	Checkbook     *CheckbookResponse `json:"checkbook,omitempty"`
	Bank          *BankResponse      `json:"bank,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToCheckResponse converts a joined check to CheckResponse DTO
func ToCheckResponse(c *domain.CheckDetail) CheckResponse {
	checkbook := ToCheckbookResponse(&c.Checkbook)
	bank := ToBankResponse(&c.Bank)
	return CheckResponse{
		CheckID:       c.CheckID,
		CheckbookID:   c.CheckbookID,
		Number:        c.Number,
		IssueDate:     c.IssueDate,
		DueDate:       c.DueDate,
		Payee:         c.Payee,
		Memo:          c.Memo,
		Amount:        c.Amount,
		Status:        c.Status,
		CashedAt:      c.CashedAt,
		Checkbook:     &checkbook,
		Bank:          &bank,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ListChecksResponse wraps one page of checks with status totals.
type ListChecksResponse struct {
	Items      []CheckResponse            `json:"items"`
	Pagination PaginationMeta             `json:"pagination"`
	Totals     map[string]decimal.Decimal `json:"totals"`
}

// ToListChecksResponse converts a domain page into the response DTO.
func ToListChecksResponse(p *domain.CheckPage) ListChecksResponse {
	items := make([]CheckResponse, len(p.Items))
	for i := range p.Items {
		items[i] = ToCheckResponse(&p.Items[i])
	}
	totals := make(map[string]decimal.Decimal, len(p.Totals))
	for status, amount := range p.Totals {
		totals[string(status)] = amount
	}
	return ListChecksResponse{
		Items:      items,
		Pagination: NewPaginationMeta(p.Page, p.Limit, p.Total),
		Totals:     totals,
	}
}

// CashFlowResponse is the JSON rendering of the cash-flow pivot.
type CashFlowResponse struct {
	Banks []string              `json:"banks"`
	Rows  []CashFlowRowResponse `json:"rows"`
}

// CashFlowRowResponse is one due date of the pivot.
type CashFlowRowResponse struct {
	DueDate string                     `json:"dueDate"`
	Cells   map[string]decimal.Decimal `json:"cells"`
}

// ToCashFlowResponse converts the pivot into its response DTO.
func ToCashFlowResponse(p *domain.CashFlowPivot) CashFlowResponse {
	rows := make([]CashFlowRowResponse, len(p.Rows))
	for i, r := range p.Rows {
		rows[i] = CashFlowRowResponse{DueDate: r.DueDate.String(), Cells: r.Cells}
	}
	return CashFlowResponse{Banks: p.Banks, Rows: rows}
}
