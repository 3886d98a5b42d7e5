package main

import (
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openDB connects to the store named by DATABASE_URL. A postgres DSN gets the
// pgx-backed driver; anything else is treated as a sqlite file path so the app
// runs locally with zero setup.
func openDB(dsn string) (*gorm.DB, error) {
	// Quieter GORM logger
	gLogger := logger.New(
		stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold: 1500 * time.Millisecond,
			LogLevel:      logger.Warn,
		},
	)

	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{Logger: gLogger})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if err := autoMigrate(db); err != nil {
		return nil, errors.Wrap(err, "migrate database")
	}
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Exercise{},
	)
}
