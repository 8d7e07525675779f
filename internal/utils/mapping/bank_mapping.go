package mapping

import (
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/models"
)

// ToModelBank converts a domain Bank to a model Bank
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:      d.BankID,
		Code:        d.Code,
		Name:        d.Name,
		IsEnabled:   d.IsEnabled,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBank converts a model Bank to a domain Bank
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:      m.BankID,
		Code:        m.Code,
		Name:        m.Name,
		IsEnabled:   m.IsEnabled,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
