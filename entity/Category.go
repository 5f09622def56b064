package entity

import (
	"time"
)

// Category codes. Stored as 2-char values, resolved to labels for display.
const (
	CategoryPhones    = "ph"
	CategoryGaming    = "ga"
	CategoryComputing = "co"
)

var CategoryChoices = []Choice{
	{CategoryPhones, "Phones"},
	{CategoryGaming, "Gaming"},
	{CategoryComputing, "Computing"},
}

// Category 1-n Brand 1-n Product 1-n Review.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:2" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Deleting a category keeps its brands, with category_id cleared.
	Brands []Brand `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// String returns the readable name instead of the database code,
// e.g. ph to Phones. Codes outside the choices read as "Unknown".
func (c Category) String() string {
	return labelOf(CategoryChoices, c.Name)
}

func (c Category) Validate() error {
	return validateChoice("category name", CategoryChoices, c.Name)
}
