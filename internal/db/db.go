package db

import (
	"errors"
	"fmt"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rmartins/tabletrack/internal/config"
	"github.com/rmartins/tabletrack/internal/models"
)

// Models lists every entity for AutoMigrate, in dependency order.
var Models = []any{
	&models.Business{},
	&models.User{},
	&models.Supplier{},
	&models.SupplierGood{},
	&models.BusinessGood{},
	&models.SupplierGoodUsage{},
	&models.Pos{},
	&models.Order{},
	&models.Printer{},
}

// ConnectAndMigrate opens the database with a retry loop and brings the
// schema up to date. With MIGRATIONS=1 the SQL migrations in ./migrations run
// via golang-migrate (the production path, carrying the unique indexes);
// otherwise AutoMigrate keeps dev setups convenient.
func ConnectAndMigrate(dsn string, log *zap.Logger) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty, check the environment configuration")
	}
	logLevel := logger.Silent
	if config.ParseBool("DB_DEBUG", false) {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel), TranslateError: true}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			break
		}
		log.Warn("retrying DB connection", zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if config.ParseBool("MIGRATIONS", false) {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range Models {
			if migErr := db.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	for _, table := range []string{"businesses", "users", "pos", "orders"} {
		if !db.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}
	log.Info("database ready")
	return db, nil
}

func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
