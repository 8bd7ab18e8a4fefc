package database

import (
	"fmt"
	"log"
	"regexp"
	"time"

	"construction_dashboard/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	// Pure-Go SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

var (
	kvPassword  = regexp.MustCompile(`(password=)([^\s]+)`)
	urlPassword = regexp.MustCompile(`(://[^:/@\s]+:)([^@/\s]+)@`)
)

// OpenGorm opens the relational store selected by STORAGE_DRIVER.
func OpenGorm(cfg config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.DBDebug {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return openPostgres(cfg.DatabaseDSN, gormCfg)
	case config.StorageSQLite:
		return OpenSQLite(cfg.SQLitePath, gormCfg)
	default:
		return nil, fmt.Errorf("storage driver %q is not relational", cfg.StorageDriver)
	}
}

func openPostgres(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is empty")
	}
	var db *gorm.DB
	var err error
	for i := 0; i < connectAttempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
		if err == nil {
			break
		}
		log.Printf("[database][postgres] retrying connection attempt=%d err=%v", i+1, err)
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	log.Printf("[database][postgres] connected dsn=%s", MaskDSN(dsn))
	return db, nil
}

// OpenSQLite opens path with the modernc driver. A nil gormCfg keeps the
// logger silent.
func OpenSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	if gormCfg == nil {
		gormCfg = &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)
	log.Printf("[database][sqlite] opened path=%s", path)
	return db, nil
}

// MaskDSN hides the password in both key=value and URL style DSNs.
func MaskDSN(dsn string) string {
	masked := kvPassword.ReplaceAllString(dsn, "${1}***")
	return urlPassword.ReplaceAllString(masked, "${1}***@")
}
