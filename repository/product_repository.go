// repository/product_repository.go
package repository

import (
	"github.com/mohamedayman28/app-like-jumia/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindAll() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Preload("Brand").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var product entity.Product
	if err := r.DB.Preload("Brand").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindByBrand(brandID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("brand_id = ?", brandID).Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.DB.Create(product).Error
}

func (r *ProductRepository) Update(product *entity.Product) error {
	return r.DB.Save(product).Error
}

// Delete removes the product and, through the CASCADE action, every review
// attached to it.
func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
