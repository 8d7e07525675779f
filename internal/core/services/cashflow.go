package services

import (
	"sort"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateCashFlow pivots checks into one row per due date and one column per bank name.
// Rows ascend by due date, columns are sorted by name, and every row carries every column.
// Totals are left to the presentation layer.
func AggregateCashFlow(checks []domain.CheckDetail) domain.CashFlowPivot {
	cells := make(map[domain.Date]map[string]decimal.Decimal)
	bankSet := make(map[string]struct{})

	for i := range checks {
		c := &checks[i]
		bank := c.Bank.Name
		if c.Bank.BankID == "" || bank == "" {
			bank = domain.NoBankLabel
		}
		bankSet[bank] = struct{}{}

		row, ok := cells[c.DueDate]
		if !ok {
			row = make(map[string]decimal.Decimal)
			cells[c.DueDate] = row
		}
		row[bank] = row[bank].Add(c.Amount)
	}

	banks := make([]string, 0, len(bankSet))
	for b := range bankSet {
		banks = append(banks, b)
	}
	sort.Strings(banks)

	dates := make([]domain.Date, 0, len(cells))
	for d := range cells {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	rows := make([]domain.CashFlowRow, len(dates))
	for i, d := range dates {
		full := make(map[string]decimal.Decimal, len(banks))
		for _, b := range banks {
			if v, ok := cells[d][b]; ok {
				full[b] = v
			} else {
				full[b] = decimal.Zero
			}
		}
		rows[i] = domain.CashFlowRow{DueDate: d, Cells: full}
	}

	return domain.CashFlowPivot{Banks: banks, Rows: rows}
}
