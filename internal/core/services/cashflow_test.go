package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detail(bankID, bankName string, due domain.Date, amount string) domain.CheckDetail {
	return domain.CheckDetail{
		Check: domain.Check{DueDate: due, Amount: decimal.RequireFromString(amount)},
		Bank:  domain.Bank{BankID: bankID, Name: bankName},
	}
}

func TestAggregateCashFlow(t *testing.T) {
	d1 := domain.NewDate(2024, time.March, 1)
	d2 := domain.NewDate(2024, time.March, 5)
	checks := []domain.CheckDetail{
		detail("b2", "Zeta Bank", d2, "100.25"),
		detail("b1", "Alpha Bank", d1, "50"),
		detail("b1", "Alpha Bank", d1, "25.50"),
		detail("b2", "Zeta Bank", d1, "10"),
		detail("", "", d2, "5"),
	}

	pivot := services.AggregateCashFlow(checks)

	assert.Equal(t, []string{"Alpha Bank", domain.NoBankLabel, "Zeta Bank"}, pivot.Banks)
	require.Len(t, pivot.Rows, 2)
	assert.Equal(t, d1, pivot.Rows[0].DueDate)
	assert.Equal(t, d2, pivot.Rows[1].DueDate)

	assert.True(t, decimal.RequireFromString("75.50").Equal(pivot.Rows[0].Cells["Alpha Bank"]))
	assert.True(t, decimal.RequireFromString("10").Equal(pivot.Rows[0].Cells["Zeta Bank"]))
	assert.True(t, pivot.Rows[0].Cells[domain.NoBankLabel].IsZero())
	assert.True(t, pivot.Rows[1].Cells["Alpha Bank"].IsZero())
	assert.True(t, decimal.RequireFromString("5").Equal(pivot.Rows[1].Cells[domain.NoBankLabel]))

	// Every row carries every column and the cells add up to the input.
	total := decimal.Zero
	for _, row := range pivot.Rows {
		assert.Len(t, row.Cells, len(pivot.Banks))
		for _, bank := range pivot.Banks {
			_, ok := row.Cells[bank]
			assert.True(t, ok, "row %s misses %s", row.DueDate, bank)
			total = total.Add(row.Cells[bank])
		}
	}
	assert.True(t, decimal.RequireFromString("190.75").Equal(total))
}

func TestAggregateCashFlow_Empty(t *testing.T) {
	pivot := services.AggregateCashFlow(nil)
	assert.Empty(t, pivot.Banks)
	assert.Empty(t, pivot.Rows)
}
