package entity

import (
	"time"
)

// Brand codes.
const (
	BrandSamsung = "sa"
	BrandOppo    = "op"
	BrandKonami  = "ko"
	BrandSony    = "so"
	BrandDell    = "de"
	BrandHP      = "hp"
)

var BrandChoices = []Choice{
	{BrandSamsung, "SAMSUNG"},
	{BrandOppo, "OPPO"},
	{BrandKonami, "KONAMI"},
	{BrandSony, "SONY"},
	{BrandDell, "DELL"},
	{BrandHP, "HP"},
}

type Brand struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:2" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Nullable so the FK action can clear it when the category goes away.
	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"-"`

	Products []Product `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

func (Brand) TableName() string {
	return "brands"
}

// String returns the readable name instead of the database code,
// e.g. sa to SAMSUNG. Codes outside the choices read as "Unknown".
func (b Brand) String() string {
	return labelOf(BrandChoices, b.Name)
}

func (b Brand) Validate() error {
	return validateChoice("brand name", BrandChoices, b.Name)
}
