package dto

import (
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
)

// CreateBankRequest defines the data needed to create a new bank.
type CreateBankRequest struct {
	Code      string `json:"code" binding:"required,max=20"`
	Name      string `json:"name" binding:"required,max=120"`
	IsEnabled *bool  `json:"isEnabled"` // Optional, defaults to true
}

// UpdateBankRequest defines the data allowed for updating a bank.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateBankRequest struct {
	Code      *string `json:"code" binding:"omitempty,max=20"`
	Name      *string `json:"name" binding:"omitempty,max=120"`
	IsEnabled *bool   `json:"isEnabled"`
}

// ListBanksParams defines query parameters for listing banks.
type ListBanksParams struct {
	EnabledOnly bool `form:"enabledOnly,default=false"`
}

// BankResponse defines the data returned for a bank.
type BankResponse struct {
	BankID        string    `json:"bankID"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	IsEnabled     bool      `json:"isEnabled"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToBankResponse converts a domain.Bank to BankResponse DTO
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		BankID:        b.BankID,
		Code:          b.Code,
		Name:          b.Name,
		IsEnabled:     b.IsEnabled,
		CreatedAt:     b.CreatedAt,
		CreatedBy:     b.CreatedBy,
		LastUpdatedAt: b.LastUpdatedAt,
		LastUpdatedBy: b.LastUpdatedBy,
	}
}

// ToListBankResponse converts a slice of domain.Bank to a slice of BankResponse DTOs
func ToListBankResponse(banks []domain.Bank) []BankResponse {
	res := make([]BankResponse, len(banks))
	for i, b := range banks {
		res[i] = ToBankResponse(&b)
	}
	return res
}
