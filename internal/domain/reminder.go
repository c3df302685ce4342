package domain

import "time"

// ServiceReminder is a dated follow-up tied to a customer and optionally to a
// service case.
type ServiceReminder struct {
	Meta
	CustomerID    string     `json:"customerId"`
	ServiceCaseID string     `json:"serviceCaseId,omitempty"`
	Title         string     `json:"title"`
	Notes         string     `json:"notes,omitempty"`
	DueDate       time.Time  `json:"dueDate"`
	IsCompleted   bool       `json:"isCompleted"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	Priority      string     `json:"priority,omitempty"`
}
