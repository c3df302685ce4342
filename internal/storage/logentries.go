package storage

import (
	"sort"
	"time"

	"github.com/asaskevich/EventBus"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

// LogEntryStorage manages service log entries. The entry timestamp is assigned
// at first save and is immutable afterwards.
type LogEntryStorage struct {
	col *Collection[domain.ServiceLogEntry, *domain.ServiceLogEntry]
}

func NewLogEntryStorage(store kvstore.Store, bus EventBus.Bus) *LogEntryStorage {
	return &LogEntryStorage{
		col: NewCollection[domain.ServiceLogEntry, *domain.ServiceLogEntry](store, domain.KeyServiceLogs, bus),
	}
}

func (s *LogEntryStorage) GetAll() []domain.ServiceLogEntry {
	return s.col.GetAll()
}

func (s *LogEntryStorage) GetByID(id string) *domain.ServiceLogEntry {
	return s.col.GetByID(id)
}

// GetByServiceCaseID returns the case's log, newest entry first.
func (s *LogEntryStorage) GetByServiceCaseID(serviceCaseID string) []domain.ServiceLogEntry {
	entries := s.col.Filter(func(le *domain.ServiceLogEntry) bool {
		return le.ServiceCaseID == serviceCaseID
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

func (s *LogEntryStorage) GetImportant(serviceCaseID string) []domain.ServiceLogEntry {
	return s.col.Filter(func(le *domain.ServiceLogEntry) bool {
		return le.ServiceCaseID == serviceCaseID && le.IsImportant
	})
}

// Save assigns the immutable entry timestamp on first save. An existing
// record keeps whatever timestamp it was first saved with.
func (s *LogEntryStorage) Save(le *domain.ServiceLogEntry) (*domain.ServiceLogEntry, error) {
	if le.ID != "" {
		if prev := s.col.GetByID(le.ID); prev != nil {
			le.Timestamp = prev.Timestamp
			return s.col.Save(le)
		}
	}
	le.Timestamp = time.Now()
	return s.col.Save(le)
}

// Update merges fields but never the immutable timestamp.
func (s *LogEntryStorage) Update(id string, fields map[string]interface{}) error {
	delete(fields, "timestamp")
	return s.col.Update(id, fields)
}

func (s *LogEntryStorage) Delete(id string) error {
	return s.col.Delete(id)
}
