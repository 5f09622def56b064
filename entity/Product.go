package entity

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `json:"image"` // opaque path/URL, storage lives elsewhere
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	BrandID *uint  `json:"brandId"`
	Brand   *Brand `json:"-"`

	// Reviews die with their product.
	Reviews []Review `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// String returns the title cut to 20 characters and capitalized.
func (p Product) String() string {
	title := p.Title
	if utf8.RuneCountInString(title) > 20 {
		title = string([]rune(title)[:20])
	}
	return capitalize(title)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
