package domain

import "time"

// Customer is a service customer with contact and location details.
// Deleting a customer normally means archiving it (soft-delete); permanent
// deletion is a separate irreversible operation.
type Customer struct {
	Meta
	Name        string     `json:"name"`
	CompanyName string     `json:"companyName,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	PostalCode  string     `json:"postalCode,omitempty"`
	City        string     `json:"city,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	IsArchived  bool       `json:"isArchived"`
	ArchivedAt  *time.Time `json:"archivedAt,omitempty"`
}
