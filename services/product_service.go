// services/product_service.go
package services

import (
	"math"

	"github.com/mohamedayman28/app-like-jumia/entity"
	"github.com/mohamedayman28/app-like-jumia/repository"
)

type ProductService struct {
	Repo    *repository.ProductRepository
	Reviews *repository.ReviewRepository
}

func NewProductService(repo *repository.ProductRepository, reviews *repository.ReviewRepository) *ProductService {
	return &ProductService{Repo: repo, Reviews: reviews}
}

// ReviewSummary holds the review statistics shown on a product page.
type ReviewSummary struct {
	Total int64   `json:"total"`
	Stars float64 `json:"stars"`
}

func (s *ProductService) List() ([]entity.Product, error) {
	return s.Repo.FindAll()
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	return s.Repo.FindByID(id)
}

func (s *ProductService) ListByBrand(brandID uint) ([]entity.Product, error) {
	return s.Repo.FindByBrand(brandID)
}

func (s *ProductService) Create(product *entity.Product) error {
	return s.Repo.Create(product)
}

func (s *ProductService) Update(product *entity.Product) error {
	return s.Repo.Update(product)
}

func (s *ProductService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

// ReviewSummary counts the product's reviews and converts their weighted
// rating into stars on a 0-5 scale, rounded to one decimal place.
//
// The rating percentage is weighted_sum / (count * 5) * 100, and stars are
// percentage / 20, with half-way values rounding to even (so exactly 2.25
// reads as 2.2). A product without reviews scores 0 instead of dividing
// by zero.
func (s *ProductService) ReviewSummary(productID uint) (ReviewSummary, error) {
	total, err := s.Reviews.CountByProduct(productID)
	if err != nil {
		return ReviewSummary{}, err
	}
	if total == 0 {
		return ReviewSummary{}, nil
	}

	breakdown, err := s.Reviews.RatingBreakdown(productID)
	if err != nil {
		return ReviewSummary{}, err
	}

	var weighted int64
	for rating := entity.RatingMin; rating <= entity.RatingMax; rating++ {
		weighted += int64(rating) * breakdown[rating]
	}

	totalPossible := total * int64(entity.RatingMax)
	percentage := float64(weighted) / float64(totalPossible) * 100
	stars := math.RoundToEven(percentage/20*10) / 10

	return ReviewSummary{Total: total, Stars: stars}, nil
}
