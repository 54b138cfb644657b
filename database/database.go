package database

import (
	"database/sql"

	"menu-app/internal/domain/analytics"
	"menu-app/internal/domain/billing"
	"menu-app/internal/domain/restaurants"
	"menu-app/internal/domain/subscriptions"
	"menu-app/internal/domain/users"
	"menu-app/internal/platform/logging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(dsn string) {
	log := logging.Log
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	DB = db

	// gen_random_uuid() for uuid primary keys
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.WithError(err).Fatal("failed to enable pgcrypto extension")
	}

	if err := DB.AutoMigrate(
		// accounts
		&users.User{},
		&subscriptions.Subscription{},
		&billing.Payment{},

		// menus
		&restaurants.Restaurant{},
		&restaurants.Category{},
		&restaurants.MenuItem{},
		&restaurants.MenuSchedule{},
		&analytics.DailyView{},
	); err != nil {
		log.WithError(err).Fatal("AutoMigrate error")
	}

	log.Info("connected and migrated")
}

// OpenWithConn wraps an existing connection (sqlmock in tests).
func OpenWithConn(conn *sql.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
