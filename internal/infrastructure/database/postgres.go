package database

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zakirya592/rk-co-pos-sub002/internal/config"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logger.Get().Info("Connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logger.Get().Info("Running database migrations...")

	return db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.Role{},
		&entity.Shop{},
		&entity.Warehouse{},

		// Trading entities
		&entity.Customer{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Payment{},
		&entity.ProductReturn{},

		// Finance entities
		&entity.Currency{},
		&entity.CurrencyHistory{},
		&entity.Expense{},
		&entity.Voucher{},
		&entity.VoucherEntry{},
		&entity.Owner{},
		&entity.PartnershipAccount{},

		// Infrastructure
		&entity.IdempotencyKey{},
	)
}

// SeedDefaultData inserts the default roles, the default shop and the base
// currency if they are missing.
func SeedDefaultData(db *gorm.DB, baseCurrencyCode string) error {
	for _, name := range []string{"admin", "manager", "cashier"} {
		var role entity.Role
		err := db.Where("name = ?", name).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&entity.Role{Name: name}).Error; err != nil {
				return fmt.Errorf("failed to seed role %q: %w", name, err)
			}
		} else if err != nil {
			return err
		}
	}

	var shop entity.Shop
	err := db.Where("slug = ?", "main").First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(&entity.Shop{Name: "Main Shop", Slug: "main"}).Error; err != nil {
			return fmt.Errorf("failed to seed default shop: %w", err)
		}
	} else if err != nil {
		return err
	}

	var base entity.Currency
	err = db.Where("code = ?", baseCurrencyCode).First(&base).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		base = baseCurrencySeed(baseCurrencyCode)
		if err := db.Create(&base).Error; err != nil {
			return fmt.Errorf("failed to seed base currency: %w", err)
		}
	} else if err != nil {
		return err
	}

	return nil
}

// baseCurrencySeed builds the base currency row for the configured code.
// Only PKR has a well-known label; any other code seeds under its own
// code so an operator can rename it afterwards.
func baseCurrencySeed(code string) entity.Currency {
	currency := entity.Currency{
		Code:         code,
		Name:         code,
		ExchangeRate: decimal.NewFromInt(1),
		IsBase:       true,
	}
	if code == "PKR" {
		currency.Name = "Pakistani Rupee"
		currency.Symbol = "Rs"
	}
	return currency
}
