package entity

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Rating bounds for a review.
const (
	RatingMin = 1
	RatingMax = 5
)

// Review by a user who purchased the product.
type Review struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:50" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Rating      int    `json:"rating"`

	// Assigned once at first insert, never written again.
	Timestamp time.Time `gorm:"autoCreateTime;<-:create" json:"timestamp"`

	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

func (rv Review) String() string {
	return fmt.Sprintf("%d out of 5, at %s", rv.Rating, rv.Timestamp.Format("2006-01-02"))
}

// ClampRating forces a rating into [RatingMin, RatingMax]. Anything below
// the minimum, including the zero value of an unset field, becomes 1;
// anything above the maximum becomes 5. Out-of-range input is corrected,
// never rejected.
func ClampRating(r int) int {
	switch {
	case r < RatingMin:
		return RatingMin
	case r > RatingMax:
		return RatingMax
	default:
		return r
	}
}

// BeforeSave clamps the rating ahead of every insert and update, so the
// stored value always lands in range no matter which path wrote it.
func (rv *Review) BeforeSave(tx *gorm.DB) error {
	rv.Rating = ClampRating(rv.Rating)
	return nil
}
