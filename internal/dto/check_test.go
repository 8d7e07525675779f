package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFilterParams_ToFilter(t *testing.T) {
	f, err := CheckFilterParams{
		Search:  "  rent ",
		BankID:  "b1",
		Status:  "CASHED",
		DueFrom: "2024-01-01",
		DueTo:   "2024-01-01",
	}.ToFilter()

	require.NoError(t, err)
	assert.Equal(t, "rent", f.Search)
	assert.Equal(t, "b1", f.BankID)
	assert.Equal(t, domain.CheckCashed, f.Status)
	assert.Equal(t, domain.NewDate(2024, time.January, 1), f.DueFrom)
	assert.Equal(t, f.DueFrom, f.DueTo)
}

func TestCheckFilterParams_ToFilterErrors(t *testing.T) {
	_, err := CheckFilterParams{DueFrom: "2024-13-01"}.ToFilter()
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = CheckFilterParams{DueFrom: "2024-02-02", DueTo: "2024-02-01"}.ToFilter()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToListChecksResponse(t *testing.T) {
	totals := domain.ZeroStatusTotals()
	totals[domain.CheckPending] = decimal.RequireFromString("12.50")
	page := &domain.CheckPage{
		Items:  []domain.CheckDetail{{Check: domain.Check{CheckID: "c1"}, Bank: domain.Bank{Name: "Bank"}}},
		Total:  41,
		Page:   2,
		Limit:  20,
		Totals: totals,
	}

	res := ToListChecksResponse(page)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Bank", res.Items[0].Bank.Name)
	assert.Equal(t, PaginationMeta{Page: 2, Limit: 20, Total: 41, TotalPages: 3}, res.Pagination)
	assert.Len(t, res.Totals, 3)
	assert.True(t, decimal.RequireFromString("12.50").Equal(res.Totals["PENDING"]))
}

func TestNewPaginationMeta_ZeroLimit(t *testing.T) {
	assert.Equal(t, int64(0), NewPaginationMeta(1, 0, 10).TotalPages)
	assert.Equal(t, int64(0), NewPaginationMeta(1, 20, 0).TotalPages)
}
