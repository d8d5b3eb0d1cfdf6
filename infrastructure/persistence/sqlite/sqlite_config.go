package sqlite

import (
	"fmt"

	"spectra-directory/infrastructure/persistence/sqlite/po"
	"spectra-directory/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config opens the on-disk SQLite store. The database file is created
// on first run.
type Config struct {
	Path     string `mapstructure:"path" json:"path"`
	LogLevel string `mapstructure:"log_level" json:"log_level"`
}

func (c *Config) DSN() string {
	// busy_timeout makes concurrent request handlers wait for the
	// single SQLite writer instead of failing immediately.
	return fmt.Sprintf("%s?_busy_timeout=5000", c.Path)
}

func (c *Config) parseLogLevel() gormlogger.LogLevel {
	switch c.LogLevel {
	case "debug", "info":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	case "silent":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}

// Connect opens the database and configures GORM to translate driver
// errors, so unique violations surface as gorm.ErrDuplicatedKey.
func (c *Config) Connect() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.NewGormLoggerAdapter(c.parseLogLevel()),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(c.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", c.Path, err)
	}

	return db, nil
}

// Migrate creates or updates the tools table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&po.ListingPO{}); err != nil {
		return fmt.Errorf("failed to migrate listings schema: %w", err)
	}
	return nil
}
