package storage

import (
	"sort"
	"time"

	"github.com/asaskevich/EventBus"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

// ChecklistStorage manages checklist items across all service cases.
type ChecklistStorage struct {
	col *Collection[domain.ChecklistItem, *domain.ChecklistItem]
}

func NewChecklistStorage(store kvstore.Store, bus EventBus.Bus) *ChecklistStorage {
	return &ChecklistStorage{
		col: NewCollection[domain.ChecklistItem, *domain.ChecklistItem](store, domain.KeyChecklistItems, bus),
	}
}

func (s *ChecklistStorage) GetAll() []domain.ChecklistItem {
	return s.col.GetAll()
}

func (s *ChecklistStorage) GetByID(id string) *domain.ChecklistItem {
	return s.col.GetByID(id)
}

// GetByServiceCaseID returns the case's checklist sorted by display order.
// Order values are a sequencing hint, duplicates are allowed.
func (s *ChecklistStorage) GetByServiceCaseID(serviceCaseID string) []domain.ChecklistItem {
	items := s.col.Filter(func(ci *domain.ChecklistItem) bool {
		return ci.ServiceCaseID == serviceCaseID
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items
}

// SetCompleted flips the completion state, stamping or clearing the completion
// metadata.
func (s *ChecklistStorage) SetCompleted(id string, completed bool, completedBy string) error {
	now := time.Now()
	return s.col.Patch(id, func(ci *domain.ChecklistItem) {
		ci.IsCompleted = completed
		if completed {
			ci.CompletedAt = &now
			ci.CompletedBy = completedBy
		} else {
			ci.CompletedAt = nil
			ci.CompletedBy = ""
		}
	})
}

func (s *ChecklistStorage) Save(ci *domain.ChecklistItem) (*domain.ChecklistItem, error) {
	return s.col.Save(ci)
}

func (s *ChecklistStorage) Update(id string, fields map[string]interface{}) error {
	return s.col.Update(id, fields)
}

func (s *ChecklistStorage) Delete(id string) error {
	return s.col.Delete(id)
}
