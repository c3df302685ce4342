package storage

import (
	"sort"
	"time"

	"github.com/asaskevich/EventBus"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

// CustomerStorage manages the customers collection. The default listing
// excludes archived customers; archiving is the normal "delete" path and
// permanent deletion is a separate irreversible operation.
type CustomerStorage struct {
	col *Collection[domain.Customer, *domain.Customer]
}

func NewCustomerStorage(store kvstore.Store, bus EventBus.Bus) *CustomerStorage {
	return &CustomerStorage{
		col: NewCollection[domain.Customer, *domain.Customer](store, domain.KeyCustomers, bus),
	}
}

// GetAll returns non-archived customers in storage order.
func (s *CustomerStorage) GetAll() []domain.Customer {
	return s.col.Filter(func(c *domain.Customer) bool { return !c.IsArchived })
}

// GetAllIncludingArchived returns every customer, archived or not.
func (s *CustomerStorage) GetAllIncludingArchived() []domain.Customer {
	return s.col.GetAll()
}

// GetArchived returns archived customers, most recently archived first.
func (s *CustomerStorage) GetArchived() []domain.Customer {
	archived := s.col.Filter(func(c *domain.Customer) bool { return c.IsArchived })
	sort.SliceStable(archived, func(i, j int) bool {
		ti, tj := archived[i].ArchivedAt, archived[j].ArchivedAt
		if ti == nil || tj == nil {
			return tj == nil && ti != nil
		}
		return ti.After(*tj)
	})
	return archived
}

func (s *CustomerStorage) GetByID(id string) *domain.Customer {
	return s.col.GetByID(id)
}

func (s *CustomerStorage) Save(c *domain.Customer) (*domain.Customer, error) {
	return s.col.Save(c)
}

func (s *CustomerStorage) Update(id string, fields map[string]interface{}) error {
	return s.col.Update(id, fields)
}

// Archive soft-deletes the customer. The record stays in the collection with
// isArchived set and archivedAt stamped.
func (s *CustomerStorage) Archive(id string) error {
	now := time.Now()
	return s.col.Patch(id, func(c *domain.Customer) {
		c.IsArchived = true
		c.ArchivedAt = &now
	})
}

// Unarchive restores an archived customer to the default listing.
func (s *CustomerStorage) Unarchive(id string) error {
	return s.col.Patch(id, func(c *domain.Customer) {
		c.IsArchived = false
		c.ArchivedAt = nil
	})
}

// DeletePermanently removes the customer for good, archived or not.
func (s *CustomerStorage) DeletePermanently(id string) error {
	return s.col.Delete(id)
}
