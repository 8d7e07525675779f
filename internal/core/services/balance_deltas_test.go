package services

import (
	"testing"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testCheck(checkbookID string, status domain.CheckStatus, amount string) *domain.Check {
	return &domain.Check{CheckbookID: checkbookID, Status: status, Amount: decimal.RequireFromString(amount)}
}

func TestBalanceDeltas(t *testing.T) {
	tests := []struct {
		name     string
		old      *domain.Check
		updated  *domain.Check
		expected map[string]string
	}{
		{"create pending", nil, testCheck("a", domain.CheckPending, "10"), map[string]string{}},
		{"create cashed", nil, testCheck("a", domain.CheckCashed, "10"), map[string]string{"a": "-10"}},
		{"delete cashed", testCheck("a", domain.CheckCashed, "10"), nil, map[string]string{"a": "10"}},
		{"delete void", testCheck("a", domain.CheckVoid, "10"), nil, map[string]string{}},
		{"cashed amount change", testCheck("a", domain.CheckCashed, "1500"), testCheck("a", domain.CheckCashed, "2000"), map[string]string{"a": "-500"}},
		{"cashed unchanged", testCheck("a", domain.CheckCashed, "10"), testCheck("a", domain.CheckCashed, "10"), map[string]string{}},
		{"leave cashed", testCheck("a", domain.CheckCashed, "10"), testCheck("a", domain.CheckVoid, "99"), map[string]string{"a": "10"}},
		{"enter cashed", testCheck("a", domain.CheckPending, "10"), testCheck("a", domain.CheckCashed, "12"), map[string]string{"a": "-12"}},
		{"pending to void", testCheck("a", domain.CheckPending, "10"), testCheck("a", domain.CheckVoid, "10"), map[string]string{}},
		{"cashed moved", testCheck("a", domain.CheckCashed, "10"), testCheck("b", domain.CheckCashed, "15"), map[string]string{"a": "10", "b": "-15"}},
		{"pending moved", testCheck("a", domain.CheckPending, "10"), testCheck("b", domain.CheckPending, "15"), map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := balanceDeltas(tt.old, tt.updated)
			assert.Len(t, got, len(tt.expected))
			for id, want := range tt.expected {
				assert.True(t, decimal.RequireFromString(want).Equal(got[id]), "checkbook %s: want %s, got %s", id, want, got[id])
			}
		})
	}
}

func TestFilterKey_DistinguishesFilters(t *testing.T) {
	day := domain.NewDate(2024, time.March, 1)
	base := domain.CheckFilter{Search: "rent", BankID: "b1"}

	assert.Equal(t, filterKey(base), filterKey(domain.CheckFilter{Search: "rent", BankID: "b1"}))
	assert.NotEqual(t, filterKey(base), filterKey(domain.CheckFilter{Search: "rent", CheckbookID: "b1"}))
	assert.NotEqual(t, filterKey(domain.CheckFilter{DueFrom: day}), filterKey(domain.CheckFilter{DueTo: day}))
	assert.NotEqual(t, filterKey(domain.CheckFilter{Search: "a|b"}), filterKey(domain.CheckFilter{Search: "a", CheckbookID: "b"}))
}
