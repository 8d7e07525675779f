package domain

// Bank is the institution a checkbook is drawn against.
type Bank struct {
	BankID    string `json:"bankID"`
	Code      string `json:"code"` // Unique short code
	Name      string `json:"name"` // Display name, used as the cash-flow column header
	IsEnabled bool   `json:"isEnabled"`
	AuditFields
}
