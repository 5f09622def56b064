// repository/review_repository.go
package repository

import (
	"github.com/mohamedayman28/app-like-jumia/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) FindByProduct(productID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("product_id = ?", productID).
		Order("timestamp DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.DB.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) CountByProduct(productID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

// RatingBreakdown returns how many reviews the product has per rating value.
// Ratings are already clamped on write, so keys fall in [1, 5].
func (r *ReviewRepository) RatingBreakdown(productID uint) (map[int]int64, error) {
	var rows []struct {
		Rating int
		Count  int64
	}
	err := r.DB.Model(&entity.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make(map[int]int64, len(rows))
	for _, row := range rows {
		breakdown[row.Rating] = row.Count
	}
	return breakdown, nil
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) Update(review *entity.Review) error {
	return r.DB.Save(review).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}
