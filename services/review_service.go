// services/review_service.go
package services

import (
	"errors"

	"github.com/mohamedayman28/app-like-jumia/entity"
	"github.com/mohamedayman28/app-like-jumia/repository"
)

var ErrReviewWithoutProduct = errors.New("review requires a product")

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

func (s *ReviewService) ListByProduct(productID uint) ([]entity.Review, error) {
	return s.Repo.FindByProduct(productID)
}

func (s *ReviewService) Get(id uint) (*entity.Review, error) {
	return s.Repo.FindByID(id)
}

// Create persists the review. The rating is clamped into range by the
// entity's save hook, so any value is accepted here.
func (s *ReviewService) Create(review *entity.Review) error {
	if review.ProductID == 0 {
		return ErrReviewWithoutProduct
	}
	return s.Repo.Create(review)
}

func (s *ReviewService) Update(review *entity.Review) error {
	if review.ProductID == 0 {
		return ErrReviewWithoutProduct
	}
	return s.Repo.Update(review)
}

func (s *ReviewService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
