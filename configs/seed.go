package configs

import (
	"log"

	"github.com/mohamedayman28/app-like-jumia/entity"
)

// SeedCatalog fills the enumerated lookup rows. Safe to run on every boot.
func SeedCatalog() error {
	db := DB()

	for _, ch := range entity.CategoryChoices {
		if err := db.FirstOrCreate(&entity.Category{}, entity.Category{Name: ch.Code}).Error; err != nil {
			return err
		}
	}
	for _, ch := range entity.BrandChoices {
		if err := db.FirstOrCreate(&entity.Brand{}, entity.Brand{Name: ch.Code}).Error; err != nil {
			return err
		}
	}

	log.Println("catalog lookup rows seeded")
	return nil
}
