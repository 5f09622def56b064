// repository/category_repository.go
package repository

import (
	"github.com/mohamedayman28/app-like-jumia/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

// Delete removes the category; dependent brands survive with a cleared
// category_id (SET NULL is declared on the relation).
func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}
