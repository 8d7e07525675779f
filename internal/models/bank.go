package models

// Bank represents a row of the banks table.
type Bank struct {
	BankID    string `db:"bank_id"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	IsEnabled bool   `db:"is_enabled"`
	AuditFields
}
