package domain

import "time"

// Case status values. The store enforces no transition rules; any status may
// follow any status.
const (
	CaseStatusPending    = "pending"
	CaseStatusInProgress = "in_progress"
	CaseStatusCompleted  = "completed"
	CaseStatusCancelled  = "cancelled"
)

// Priority values shared by service cases and reminders.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidCaseStatus reports whether s is one of the closed status values.
func ValidCaseStatus(s string) bool {
	switch s {
	case CaseStatusPending, CaseStatusInProgress, CaseStatusCompleted, CaseStatusCancelled:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the closed priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ServiceCase is the central work item. It belongs to exactly one customer and
// optionally one product. The checklist and images are embedded by convention
// and also queryable through their own collections by serviceCaseId.
type ServiceCase struct {
	Meta
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	CustomerID    string          `json:"customerId"`
	ProductID     string          `json:"productId,omitempty"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	ScheduledDate *time.Time      `json:"scheduledDate,omitempty"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
	Checklist     []ChecklistItem `json:"checklist,omitempty"`
	Images        []ServiceImage  `json:"images,omitempty"`
}

// ServiceCaseWithCustomer is a read-side join of a case and its customer.
// Customer is nil when the customerId does not resolve; the reference is never
// validated at write time.
type ServiceCaseWithCustomer struct {
	ServiceCase
	Customer *Customer `json:"customer,omitempty"`
}

// ChecklistItem is a single step on a service case checklist. Order is a
// display sequence hint, not enforced to be unique.
type ChecklistItem struct {
	Meta
	ServiceCaseID string     `json:"serviceCaseId"`
	Text          string     `json:"text"`
	IsCompleted   bool       `json:"isCompleted"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CompletedBy   string     `json:"completedBy,omitempty"`
	Order         int        `json:"order"`
}

// Image classification tags.
const (
	ImageTagBefore = "before"
	ImageTagDuring = "during"
	ImageTagAfter  = "after"
	ImageTagOther  = "other"
)

// ServiceImage references a device-local image by URI; no byte data is stored.
type ServiceImage struct {
	Meta
	ServiceCaseID string `json:"serviceCaseId"`
	URI           string `json:"uri"`
	Tag           string `json:"tag,omitempty"`
	Caption       string `json:"caption,omitempty"`
}

// Log entry types.
const (
	LogTypeNote         = "note"
	LogTypeStatusChange = "status_change"
	LogTypeWork         = "work"
	LogTypeContact      = "contact"
	LogTypeOther        = "other"
)

// ServiceLogEntry is a free-text note on a service case. Timestamp is assigned
// at first save and never changed by later updates.
type ServiceLogEntry struct {
	Meta
	ServiceCaseID string    `json:"serviceCaseId"`
	Type          string    `json:"type"`
	Text          string    `json:"text"`
	Tags          []string  `json:"tags,omitempty"`
	IsImportant   bool      `json:"isImportant"`
	Timestamp     time.Time `json:"timestamp"`
}
