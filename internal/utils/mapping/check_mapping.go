package mapping

import (
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/models"
	"github.com/jackc/pgx/v5/pgtype"
)

// ToModelCheck converts a domain Check to a model Check
func ToModelCheck(d domain.Check) models.Check {
	m := models.Check{
		CheckID:     d.CheckID,
		CheckbookID: d.CheckbookID,
		Number:      d.Number,
		IssueDate:   ToPgDate(d.IssueDate),
		DueDate:     ToPgDate(d.DueDate),
		Payee:       d.Payee,
		Memo:        d.Memo,
		Amount:      d.Amount,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.CashedAt != nil {
		m.CashedAt = pgtype.Timestamptz{Time: *d.CashedAt, Valid: true}
	}
	return m
}

// ToDomainCheck converts a model Check to a domain Check
func ToDomainCheck(m models.Check) domain.Check {
	return domain.Check{
		CheckID:     m.CheckID,
		CheckbookID: m.CheckbookID,
		Number:      m.Number,
		IssueDate:   FromPgDate(m.IssueDate),
		DueDate:     FromPgDate(m.DueDate),
		Payee:       m.Payee,
		Memo:        m.Memo,
		Amount:      m.Amount,
		Status:      domain.CheckStatus(m.Status),
		CashedAt:    CashedAtOrNil(m.CashedAt),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToPgDate converts a calendar date to a DATE parameter. The zero date becomes NULL.
func ToPgDate(d domain.Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

// FromPgDate reads a DATE column. pgx decodes DATE as UTC midnight, so the UTC date is the stored one.
func FromPgDate(p pgtype.Date) domain.Date {
	if !p.Valid {
		return domain.Date{}
	}
	return domain.DateOf(p.Time.UTC())
}

// CashedAtOrNil maps a nullable timestamp to a pointer.
func CashedAtOrNil(p pgtype.Timestamptz) *time.Time {
	if !p.Valid {
		return nil
	}
	t := p.Time
	return &t
}
