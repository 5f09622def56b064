// repository/brand_repository.go
package repository

import (
	"github.com/mohamedayman28/app-like-jumia/entity"
	"gorm.io/gorm"
)

type BrandRepository struct {
	DB *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{DB: db}
}

func (r *BrandRepository) FindAll() ([]entity.Brand, error) {
	var brands []entity.Brand
	err := r.DB.Preload("Category").Find(&brands).Error
	return brands, err
}

func (r *BrandRepository) FindByID(id uint) (*entity.Brand, error) {
	var brand entity.Brand
	if err := r.DB.Preload("Category").First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepository) FindByCategory(categoryID uint) ([]entity.Brand, error) {
	var brands []entity.Brand
	err := r.DB.Where("category_id = ?", categoryID).Find(&brands).Error
	return brands, err
}

func (r *BrandRepository) Create(brand *entity.Brand) error {
	return r.DB.Create(brand).Error
}

func (r *BrandRepository) Update(brand *entity.Brand) error {
	return r.DB.Save(brand).Error
}

func (r *BrandRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Brand{}, id).Error
}
