package services

import (
	"testing"

	"github.com/mohamedayman28/app-like-jumia/entity"
	"github.com/mohamedayman28/app-like-jumia/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{},
		&entity.Brand{},
		&entity.Product{},
		&entity.Review{},
	))
	return db
}

func newProductService(t *testing.T) (*ProductService, *ReviewService) {
	t.Helper()
	db := setupTestDB(t)
	products := NewProductService(
		repository.NewProductRepository(db),
		repository.NewReviewRepository(db),
	)
	reviews := NewReviewService(repository.NewReviewRepository(db))
	return products, reviews
}
