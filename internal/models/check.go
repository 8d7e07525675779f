package models

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Check represents a row of the checks table. Dates are DATE columns, so they carry no zone.
type Check struct {
	CheckID     string             `db:"check_id"`
	CheckbookID string             `db:"checkbook_id"`
	Number      string             `db:"number"`
	IssueDate   pgtype.Date        `db:"issue_date"`
	DueDate     pgtype.Date        `db:"due_date"`
	Payee       string             `db:"payee"`
	Memo        string             `db:"memo"`
	Amount      decimal.Decimal    `db:"amount"`
	Status      string             `db:"status"`
	CashedAt    pgtype.Timestamptz `db:"cashed_at"` // NULL unless status is CASHED
	AuditFields
}
