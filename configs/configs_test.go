package configs

import (
	"path/filepath"
	"testing"

	"github.com/mohamedayman28/app-like-jumia/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	assert.Equal(t, "postgres", getEnv("DB_DRIVER", "sqlite"))
	assert.Equal(t, "fallback", getEnv("SOME_UNSET_KEY", "fallback"))
}

func TestConnectionDBRejectsUnknownDriver(t *testing.T) {
	err := ConnectionDB(&Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestReferentialActionsHoldAcrossPoolConnections(t *testing.T) {
	cfg := &Config{
		DBDriver: "sqlite",
		DBSource: filepath.Join(t.TempDir(), "fk_test.db"),
	}
	require.NoError(t, ConnectionDB(cfg))
	require.NoError(t, SetupDatabase())

	// Drop idle connections so each statement may run on a fresh pool
	// connection; the foreign-keys setting must hold on all of them.
	sqlDB, err := DB().DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(0)

	cat := entity.Category{Name: entity.CategoryPhones}
	require.NoError(t, DB().Create(&cat).Error)
	brand := entity.Brand{Name: entity.BrandSamsung, CategoryID: &cat.ID}
	require.NoError(t, DB().Create(&brand).Error)

	require.NoError(t, DB().Delete(&entity.Category{}, cat.ID).Error)

	var gotBrand entity.Brand
	require.NoError(t, DB().First(&gotBrand, brand.ID).Error)
	assert.Nil(t, gotBrand.CategoryID)

	product := entity.Product{Title: "test"}
	require.NoError(t, DB().Create(&product).Error)
	rv := entity.Review{Rating: 4, ProductID: product.ID}
	require.NoError(t, DB().Create(&rv).Error)

	require.NoError(t, DB().Delete(&entity.Product{}, product.ID).Error)

	var reviews int64
	require.NoError(t, DB().Model(&entity.Review{}).
		Where("product_id = ?", product.ID).
		Count(&reviews).Error)
	assert.Zero(t, reviews)
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	cfg := &Config{
		DBDriver: "sqlite",
		DBSource: filepath.Join(t.TempDir(), "seed_test.db"),
	}
	require.NoError(t, ConnectionDB(cfg))
	require.NoError(t, SetupDatabase())

	require.NoError(t, SeedCatalog())
	require.NoError(t, SeedCatalog())

	var cats, brands int64
	require.NoError(t, DB().Model(&entity.Category{}).Count(&cats).Error)
	require.NoError(t, DB().Model(&entity.Brand{}).Count(&brands).Error)
	assert.Equal(t, int64(len(entity.CategoryChoices)), cats)
	assert.Equal(t, int64(len(entity.BrandChoices)), brands)
}
