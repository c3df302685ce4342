package storage

import (
	"github.com/asaskevich/EventBus"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

// ImageStorage manages service image references. Only device-local URIs are
// stored, never image bytes.
type ImageStorage struct {
	col *Collection[domain.ServiceImage, *domain.ServiceImage]
}

func NewImageStorage(store kvstore.Store, bus EventBus.Bus) *ImageStorage {
	return &ImageStorage{
		col: NewCollection[domain.ServiceImage, *domain.ServiceImage](store, domain.KeyServiceImages, bus),
	}
}

func (s *ImageStorage) GetAll() []domain.ServiceImage {
	return s.col.GetAll()
}

func (s *ImageStorage) GetByID(id string) *domain.ServiceImage {
	return s.col.GetByID(id)
}

func (s *ImageStorage) GetByServiceCaseID(serviceCaseID string) []domain.ServiceImage {
	return s.col.Filter(func(img *domain.ServiceImage) bool {
		return img.ServiceCaseID == serviceCaseID
	})
}

func (s *ImageStorage) GetByTag(serviceCaseID, tag string) []domain.ServiceImage {
	return s.col.Filter(func(img *domain.ServiceImage) bool {
		return img.ServiceCaseID == serviceCaseID && img.Tag == tag
	})
}

func (s *ImageStorage) Save(img *domain.ServiceImage) (*domain.ServiceImage, error) {
	return s.col.Save(img)
}

func (s *ImageStorage) Update(id string, fields map[string]interface{}) error {
	return s.col.Update(id, fields)
}

func (s *ImageStorage) Delete(id string) error {
	return s.col.Delete(id)
}
