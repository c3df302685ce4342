package storage

import (
	"github.com/asaskevich/EventBus"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

// ProductStorage manages the products collection.
type ProductStorage struct {
	col *Collection[domain.Product, *domain.Product]
}

func NewProductStorage(store kvstore.Store, bus EventBus.Bus) *ProductStorage {
	return &ProductStorage{
		col: NewCollection[domain.Product, *domain.Product](store, domain.KeyProducts, bus),
	}
}

func (s *ProductStorage) GetAll() []domain.Product {
	return s.col.GetAll()
}

// GetActive returns products whose isActive flag is set. Inactive products are
// hidden, not deleted.
func (s *ProductStorage) GetActive() []domain.Product {
	return s.col.Filter(func(p *domain.Product) bool { return p.IsActive })
}

func (s *ProductStorage) GetByID(id string) *domain.Product {
	return s.col.GetByID(id)
}

func (s *ProductStorage) GetByCustomerID(customerID string) []domain.Product {
	return s.col.Filter(func(p *domain.Product) bool { return p.CustomerID == customerID })
}

// GetStandalone returns active catalog items not yet assigned to a customer.
func (s *ProductStorage) GetStandalone() []domain.Product {
	return s.col.Filter(func(p *domain.Product) bool { return p.IsStandalone && p.IsActive })
}

// AssignToCustomer attaches a standalone product to a customer.
func (s *ProductStorage) AssignToCustomer(id, customerID string) error {
	return s.col.Patch(id, func(p *domain.Product) {
		p.CustomerID = customerID
		p.IsStandalone = false
	})
}

func (s *ProductStorage) Save(p *domain.Product) (*domain.Product, error) {
	return s.col.Save(p)
}

func (s *ProductStorage) Update(id string, fields map[string]interface{}) error {
	return s.col.Update(id, fields)
}

func (s *ProductStorage) Delete(id string) error {
	return s.col.Delete(id)
}
