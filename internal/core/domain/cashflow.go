package domain

import "github.com/shopspring/decimal"

// NoBankLabel is the column used for checks whose bank link is missing.
const NoBankLabel = "No bank"

// CashFlowRow holds the per-bank sums for one due date.
type CashFlowRow struct {
	DueDate Date                       `json:"dueDate"`
	Cells   map[string]decimal.Decimal `json:"cells"` // keyed by bank name, every column present
}

// CashFlowPivot is the due-date by bank table of check amounts.
type CashFlowPivot struct {
	Banks []string      `json:"banks"`
	Rows  []CashFlowRow `json:"rows"`
}
