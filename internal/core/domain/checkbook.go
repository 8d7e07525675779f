package domain

import "github.com/shopspring/decimal"

// Checkbook is a block of reserved check numbers issued against one bank account.
type Checkbook struct {
	CheckbookID    string          `json:"checkbookID"`
	Number         string          `json:"number"` // Unique
	BankID         string          `json:"bankID"` // FK -> banks.bank_id
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"` // InitialBalance minus every CASHED check
	IsActive       bool            `json:"isActive"`
	RangeFrom      int64           `json:"rangeFrom"`
	RangeTo        int64           `json:"rangeTo"`
	AuditFields
}

// CheckbookDetail is a checkbook joined with its bank.
type CheckbookDetail struct {
	Checkbook
	Bank Bank `json:"bank"`
}

// BalanceReconciliation is the outcome of recomputing a checkbook balance from its checks.
type BalanceReconciliation struct {
	CheckbookID     string          `json:"checkbookID"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	Drift           decimal.Decimal `json:"drift"`
}

// CheckbookFilter narrows checkbook listings.
type CheckbookFilter struct {
	BankID     string
	ActiveOnly bool
}
