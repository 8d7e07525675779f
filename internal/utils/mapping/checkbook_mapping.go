package mapping

import (
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/models"
)

// ToModelCheckbook converts a domain Checkbook to a model Checkbook
func ToModelCheckbook(d domain.Checkbook) models.Checkbook {
	return models.Checkbook{
		CheckbookID:    d.CheckbookID,
		Number:         d.Number,
		BankID:         d.BankID,
		InitialBalance: d.InitialBalance,
		CurrentBalance: d.CurrentBalance,
		IsActive:       d.IsActive,
		RangeFrom:      d.RangeFrom,
		RangeTo:        d.RangeTo,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheckbook converts a model Checkbook to a domain Checkbook
func ToDomainCheckbook(m models.Checkbook) domain.Checkbook {
	return domain.Checkbook{
		CheckbookID:    m.CheckbookID,
		Number:         m.Number,
		BankID:         m.BankID,
		InitialBalance: m.InitialBalance,
		CurrentBalance: m.CurrentBalance,
		IsActive:       m.IsActive,
		RangeFrom:      m.RangeFrom,
		RangeTo:        m.RangeTo,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
