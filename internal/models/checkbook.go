package models

import "github.com/shopspring/decimal"

// Checkbook represents a row of the checkbooks table.
type Checkbook struct {
	CheckbookID    string          `db:"checkbook_id"`
	Number         string          `db:"number"`
	BankID         string          `db:"bank_id"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	IsActive       bool            `db:"is_active"`
	RangeFrom      int64           `db:"range_from"`
	RangeTo        int64           `db:"range_to"`
	AuditFields
}
