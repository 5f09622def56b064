// services/brand_service.go
package services

import (
	"github.com/mohamedayman28/app-like-jumia/entity"
	"github.com/mohamedayman28/app-like-jumia/repository"
)

type BrandService struct {
	Repo *repository.BrandRepository
}

func NewBrandService(repo *repository.BrandRepository) *BrandService {
	return &BrandService{Repo: repo}
}

func (s *BrandService) List() ([]entity.Brand, error) {
	return s.Repo.FindAll()
}

func (s *BrandService) Get(id uint) (*entity.Brand, error) {
	return s.Repo.FindByID(id)
}

func (s *BrandService) ListByCategory(categoryID uint) ([]entity.Brand, error) {
	return s.Repo.FindByCategory(categoryID)
}

func (s *BrandService) Create(brand *entity.Brand) error {
	if err := brand.Validate(); err != nil {
		return err
	}
	return s.Repo.Create(brand)
}

func (s *BrandService) Update(brand *entity.Brand) error {
	if err := brand.Validate(); err != nil {
		return err
	}
	return s.Repo.Update(brand)
}

func (s *BrandService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
