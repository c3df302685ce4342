package storage

import (
	"github.com/asaskevich/EventBus"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

// CategoryStorage manages the product category taxonomy.
type CategoryStorage struct {
	col *Collection[domain.ProductCategory, *domain.ProductCategory]
}

func NewCategoryStorage(store kvstore.Store, bus EventBus.Bus) *CategoryStorage {
	return &CategoryStorage{
		col: NewCollection[domain.ProductCategory, *domain.ProductCategory](store, domain.KeyCategories, bus),
	}
}

func (s *CategoryStorage) GetAll() []domain.ProductCategory {
	return s.col.GetAll()
}

func (s *CategoryStorage) GetByID(id string) *domain.ProductCategory {
	return s.col.GetByID(id)
}

func (s *CategoryStorage) Save(c *domain.ProductCategory) (*domain.ProductCategory, error) {
	return s.col.Save(c)
}

func (s *CategoryStorage) Update(id string, fields map[string]interface{}) error {
	return s.col.Update(id, fields)
}

func (s *CategoryStorage) Delete(id string) error {
	return s.col.Delete(id)
}
