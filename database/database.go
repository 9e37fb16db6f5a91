package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/config"
	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqlitePrefix = "sqlite://"

// Open connects to Postgres, or to SQLite when the URL uses the sqlite://
// scheme. TranslateError is on so duplicate keys surface as
// gorm.ErrDuplicatedKey. GORM's own output goes to logger.
func Open(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         NewLogger(logger),
	}

	var dialector gorm.Dialector
	if path, ok := strings.CutPrefix(cfg.URL, sqlitePrefix); ok {
		dialector = sqlite.Open(path)
	} else {
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}

// Seed inserts the default admin and customer when they are missing.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	adminHash, err := auth.HashPassword("Admin@123")
	if err != nil {
		return err
	}
	admin := models.Admin{Name: "SuperAdmin", Email: "admin@example.com", Password: adminHash}
	if err := createIfMissing(db, &admin, "email = ?", admin.Email); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	customerHash, err := auth.HashPassword("Customer@123")
	if err != nil {
		return err
	}
	customer := models.Customer{Name: "Default Customer", Email: "customer@example.com", Password: customerHash}
	if err := createIfMissing(db, &customer, "email = ?", customer.Email); err != nil {
		return fmt.Errorf("seed customer: %w", err)
	}

	logger.Info("seed complete", zap.String("admin", admin.Email), zap.String("customer", customer.Email))
	return nil
}

func createIfMissing(db *gorm.DB, record interface{}, query string, args ...interface{}) error {
	var count int64
	if err := db.Model(record).Where(query, args...).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(record).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}

// Close releases the underlying pool.
func Close(db *gorm.DB) {
	if s, err := db.DB(); err == nil {
		_ = s.Close()
	}
}
