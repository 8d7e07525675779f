package dto

import (
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCheckbookRequest defines the data needed to create a new checkbook.
type CreateCheckbookRequest struct {
	Number         string          `json:"number" binding:"required,max=40"`
	BankID         string          `json:"bankID" binding:"required"`
	InitialBalance decimal.Decimal `json:"initialBalance" binding:"gte=0"`
	RangeFrom      int64           `json:"rangeFrom" binding:"required,gt=0"`
	RangeTo        int64           `json:"rangeTo" binding:"required,gtfield=RangeFrom"`
	IsActive       *bool           `json:"isActive"` // Optional, defaults to true
}

// UpdateCheckbookRequest defines the data allowed for updating a checkbook.
// The initial balance is immutable and therefore absent.
type UpdateCheckbookRequest struct {
	Number    *string `json:"number" binding:"omitempty,max=40"`
	BankID    *string `json:"bankID"`
	IsActive  *bool   `json:"isActive"`
	RangeFrom *int64  `json:"rangeFrom" binding:"omitempty,gt=0"`
	RangeTo   *int64  `json:"rangeTo" binding:"omitempty,gt=0"`
}

// ListCheckbooksParams defines query parameters for listing checkbooks.
type ListCheckbooksParams struct {
	BankID     string `form:"bankID"`
	ActiveOnly bool   `form:"activeOnly,default=false"`
}

// CheckbookResponse defines the data returned for a checkbook.
type CheckbookResponse struct {
	CheckbookID    string          `json:"checkbookID"`
	Number         string          `json:"number"`
	BankID         string          `json:"bankID"`
	Bank           *BankResponse   `json:"bank,omitempty"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
	RangeFrom      int64           `json:"rangeFrom"`
	RangeTo        int64           `json:"rangeTo"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToCheckbookResponse converts a domain.Checkbook to CheckbookResponse DTO
func ToCheckbookResponse(cb *domain.Checkbook) CheckbookResponse {
	return CheckbookResponse{
		CheckbookID:    cb.CheckbookID,
		Number:         cb.Number,
		BankID:         cb.BankID,
		InitialBalance: cb.InitialBalance,
		CurrentBalance: cb.CurrentBalance,
		IsActive:       cb.IsActive,
		RangeFrom:      cb.RangeFrom,
		RangeTo:        cb.RangeTo,
		CreatedAt:      cb.CreatedAt,
		CreatedBy:      cb.CreatedBy,
		LastUpdatedAt:  cb.LastUpdatedAt,
		LastUpdatedBy:  cb.LastUpdatedBy,
	}
}

// ToCheckbookDetailResponse converts a checkbook joined with its bank.
func ToCheckbookDetailResponse(cb *domain.CheckbookDetail) CheckbookResponse {
	res := ToCheckbookResponse(&cb.Checkbook)
	bank := ToBankResponse(&cb.Bank)
	res.Bank = &bank
	return res
}

// ToListCheckbookResponse converts a slice of domain.CheckbookDetail to DTOs
func ToListCheckbookResponse(cbs []domain.CheckbookDetail) []CheckbookResponse {
	res := make([]CheckbookResponse, len(cbs))
	for i, cb := range cbs {
		res[i] = ToCheckbookDetailResponse(&cb)
	}
	return res
}

// ValidateNumberResponse is returned by the number pre-validation endpoint.
type ValidateNumberResponse struct {
	CheckbookID string `json:"checkbookID"`
	Number      string `json:"number"`
	Valid       bool   `json:"valid"`
}
