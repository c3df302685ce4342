package storage

import (
	"time"

	"github.com/asaskevich/EventBus"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

// ReminderStorage manages service reminders. Reminders are only ever read on
// demand; nothing scans them in the background.
type ReminderStorage struct {
	col *Collection[domain.ServiceReminder, *domain.ServiceReminder]
}

func NewReminderStorage(store kvstore.Store, bus EventBus.Bus) *ReminderStorage {
	return &ReminderStorage{
		col: NewCollection[domain.ServiceReminder, *domain.ServiceReminder](store, domain.KeyReminders, bus),
	}
}

func (s *ReminderStorage) GetAll() []domain.ServiceReminder {
	return s.col.GetAll()
}

func (s *ReminderStorage) GetByID(id string) *domain.ServiceReminder {
	return s.col.GetByID(id)
}

func (s *ReminderStorage) GetByCustomerID(customerID string) []domain.ServiceReminder {
	return s.col.Filter(func(r *domain.ServiceReminder) bool { return r.CustomerID == customerID })
}

// GetOpen returns reminders not yet completed.
func (s *ReminderStorage) GetOpen() []domain.ServiceReminder {
	return s.col.Filter(func(r *domain.ServiceReminder) bool { return !r.IsCompleted })
}

// GetDueBefore returns open reminders due strictly before t.
func (s *ReminderStorage) GetDueBefore(t time.Time) []domain.ServiceReminder {
	return s.col.Filter(func(r *domain.ServiceReminder) bool {
		return !r.IsCompleted && r.DueDate.Before(t)
	})
}

// Complete marks the reminder done and stamps completedAt.
func (s *ReminderStorage) Complete(id string) error {
	now := time.Now()
	return s.col.Patch(id, func(r *domain.ServiceReminder) {
		r.IsCompleted = true
		r.CompletedAt = &now
	})
}

func (s *ReminderStorage) Save(r *domain.ServiceReminder) (*domain.ServiceReminder, error) {
	return s.col.Save(r)
}

func (s *ReminderStorage) Update(id string, fields map[string]interface{}) error {
	return s.col.Update(id, fields)
}

func (s *ReminderStorage) Delete(id string) error {
	return s.col.Delete(id)
}
