package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckStatus is the lifecycle state of a check.
type CheckStatus string

const (
	CheckPending CheckStatus = "PENDING"
	CheckCashed  CheckStatus = "CASHED"
	CheckVoid    CheckStatus = "VOID"
)

// CheckStatuses lists every status in display order.
var CheckStatuses = []CheckStatus{CheckPending, CheckCashed, CheckVoid}

// IsValid reports whether s is a known status.
func (s CheckStatus) IsValid() bool {
	switch s {
	case CheckPending, CheckCashed, CheckVoid:
		return true
	}
	return false
}

// Check is a single payment instrument drawn from a checkbook.
type Check struct {
	CheckID     string          `json:"checkID"`
	CheckbookID string          `json:"checkbookID"` // FK -> checkbooks.checkbook_id
	Number      string          `json:"number"`      // Canonical integer string, unique per checkbook
	IssueDate   Date            `json:"issueDate"`
	DueDate     Date            `json:"dueDate"`
	Payee       string          `json:"payee"`
	Memo        string          `json:"memo"`
	Amount      decimal.Decimal `json:"amount"`
	Status      CheckStatus     `json:"status"`
	CashedAt    *time.Time      `json:"cashedAt"` // Set only while Status == CASHED
	AuditFields
}

// CheckDetail is a check joined with its checkbook and bank.
type CheckDetail struct {
	Check
	Checkbook Checkbook `json:"checkbook"`
	Bank      Bank      `json:"bank"`
}

// CheckFilter narrows check queries. Zero values mean "no filter".
type CheckFilter struct {
	Search      string
	CheckbookID string
	BankID      string
	Status      CheckStatus
	DueFrom     Date
	DueTo       Date
}

// CheckPage is one page of a filtered check query plus totals over the whole filtered set.
type CheckPage struct {
	Items  []CheckDetail
	Total  int64
	Page   int
	Limit  int
	Totals map[CheckStatus]decimal.Decimal
}

// ZeroStatusTotals returns a totals map with every status set to zero.
func ZeroStatusTotals() map[CheckStatus]decimal.Decimal {
	totals := make(map[CheckStatus]decimal.Decimal, len(CheckStatuses))
	for _, s := range CheckStatuses {
		totals[s] = decimal.Zero
	}
	return totals
}
