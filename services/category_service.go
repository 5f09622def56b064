// services/category_service.go
package services

import (
	"github.com/mohamedayman28/app-like-jumia/entity"
	"github.com/mohamedayman28/app-like-jumia/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.FindAll()
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	return s.Repo.FindByID(id)
}

// Create runs full validation before the write. Callers that need to skip
// validation go through the repository directly.
func (s *CategoryService) Create(cat *entity.Category) error {
	if err := cat.Validate(); err != nil {
		return err
	}
	return s.Repo.Create(cat)
}

func (s *CategoryService) Update(cat *entity.Category) error {
	if err := cat.Validate(); err != nil {
		return err
	}
	return s.Repo.Update(cat)
}

func (s *CategoryService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
