package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"perfectbank-backend/internal/config"
	"perfectbank-backend/internal/domain/loan"
	"perfectbank-backend/internal/domain/repayment"
	"perfectbank-backend/internal/domain/sms"
	"perfectbank-backend/internal/domain/user"
)

// OpenGormWithDialector opens and pings a gorm handle over any dialector.
// Split out so tests can inject a mocked *sql.DB.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Open picks the dialector from config. Sqlite is the default deployment:
// the service is backed by an in-process store unless pointed at MySQL.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverSqlite:
		db, err := OpenGormWithDialector(sqlite.Open(cfg.SqliteDSN))
		if err != nil {
			return nil, err
		}
		// A shared-cache :memory: database still locks per connection;
		// a single conn avoids SQLITE_BUSY under concurrent writes.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		logrus.WithField("dsn", cfg.SqliteDSN).Info("gorm: connected (sqlite)")
		return db, nil
	case config.DriverMySQL:
		db, err := OpenGormWithDialector(mysql.Open(cfg.MySQLDSN()))
		if err != nil {
			return nil, err
		}
		logrus.Info("gorm: connected (mysql)")
		return db, nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&loan.Loan{},
		&repayment.Repayment{},
		&sms.Log{},
	)
}
