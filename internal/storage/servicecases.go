package storage

import (
	"github.com/asaskevich/EventBus"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

// ServiceCaseStorage manages the service cases collection.
type ServiceCaseStorage struct {
	col       *Collection[domain.ServiceCase, *domain.ServiceCase]
	customers *CustomerStorage
}

func NewServiceCaseStorage(store kvstore.Store, bus EventBus.Bus, customers *CustomerStorage) *ServiceCaseStorage {
	return &ServiceCaseStorage{
		col:       NewCollection[domain.ServiceCase, *domain.ServiceCase](store, domain.KeyServiceCases, bus),
		customers: customers,
	}
}

func (s *ServiceCaseStorage) GetAll() []domain.ServiceCase {
	return s.col.GetAll()
}

func (s *ServiceCaseStorage) GetByID(id string) *domain.ServiceCase {
	return s.col.GetByID(id)
}

func (s *ServiceCaseStorage) GetByCustomerID(customerID string) []domain.ServiceCase {
	return s.col.Filter(func(sc *domain.ServiceCase) bool { return sc.CustomerID == customerID })
}

func (s *ServiceCaseStorage) GetByProductID(productID string) []domain.ServiceCase {
	return s.col.Filter(func(sc *domain.ServiceCase) bool { return sc.ProductID == productID })
}

// GetAllWithCustomers attaches the referenced customer to each case. The
// customer is nil when the reference does not resolve; references are never
// validated at write time, so dangling customerIds are tolerated here.
func (s *ServiceCaseStorage) GetAllWithCustomers() []domain.ServiceCaseWithCustomer {
	customers := s.customers.GetAllIncludingArchived()
	byID := make(map[string]*domain.Customer, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}

	cases := s.col.GetAll()
	out := make([]domain.ServiceCaseWithCustomer, 0, len(cases))
	for _, sc := range cases {
		out = append(out, domain.ServiceCaseWithCustomer{
			ServiceCase: sc,
			Customer:    byID[sc.CustomerID],
		})
	}
	return out
}

// CountByStatus tallies cases per status value.
func (s *ServiceCaseStorage) CountByStatus() map[string]int {
	counts := make(map[string]int)
	for _, sc := range s.col.GetAll() {
		counts[sc.Status]++
	}
	return counts
}

func (s *ServiceCaseStorage) Save(sc *domain.ServiceCase) (*domain.ServiceCase, error) {
	return s.col.Save(sc)
}

func (s *ServiceCaseStorage) Update(id string, fields map[string]interface{}) error {
	return s.col.Update(id, fields)
}

func (s *ServiceCaseStorage) Delete(id string) error {
	return s.col.Delete(id)
}
