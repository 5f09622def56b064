package configs

import (
	"fmt"
	"strings"

	"github.com/mohamedayman28/app-like-jumia/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var err error
	switch cfg.DBDriver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	case "sqlite":
		// sqlite ships with referential actions switched off, and the
		// setting is per-connection. Carrying it in the DSN applies it to
		// every connection the pool opens, so SET NULL / CASCADE hold no
		// matter which connection runs the delete.
		dsn := cfg.DBSource
		if strings.Contains(dsn, "?") {
			dsn += "&_foreign_keys=on"
		} else {
			dsn += "?_foreign_keys=on"
		}
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	return nil
}

func SetupDatabase() error {
	// Parents before children so the FK constraints can be declared.
	return db.AutoMigrate(
		&entity.Category{},
		&entity.Brand{},
		&entity.Product{},
		&entity.Review{},
	)
}
