package storage

import (
	"github.com/asaskevich/EventBus"

	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

// Storage bundles the per-entity collection helpers over one key-value store.
// Collections are isolated from each other; cross-entity reads are in-memory
// filters and joins, never enforced references.
type Storage struct {
	Customers  *CustomerStorage
	Products   *ProductStorage
	Categories *CategoryStorage
	Cases      *ServiceCaseStorage
	Checklists *ChecklistStorage
	Images     *ImageStorage
	Logs       *LogEntryStorage
	Reminders  *ReminderStorage
}

// New wires every collection helper to the given store and event bus. The bus
// may be nil when change notifications are not wanted.
func New(store kvstore.Store, bus EventBus.Bus) *Storage {
	customers := NewCustomerStorage(store, bus)
	return &Storage{
		Customers:  customers,
		Products:   NewProductStorage(store, bus),
		Categories: NewCategoryStorage(store, bus),
		Cases:      NewServiceCaseStorage(store, bus, customers),
		Checklists: NewChecklistStorage(store, bus),
		Images:     NewImageStorage(store, bus),
		Logs:       NewLogEntryStorage(store, bus),
		Reminders:  NewReminderStorage(store, bus),
	}
}
