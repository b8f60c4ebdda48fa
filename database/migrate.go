package database

import (
	"fmt"
	"strings"

	"admindash_backend/internal/config"
	"admindash_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mysqlDSN forces clientFoundRows so UPDATE reports matched rows, not
// changed rows. The repositories read RowsAffected == 0 as "id not
// found"; without this flag an update that assigns the value a row
// already holds would be mistaken for a missing row.
func mysqlDSN(dsn string) string {
	if strings.Contains(dsn, "clientFoundRows=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&clientFoundRows=true"
	}
	return dsn + "?clientFoundRows=true"
}

// Connect opens the configured database. The driver is selected by
// config so deployments can run on postgres or mysql.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(mysqlDSN(cfg.Database.DSN))
	case "postgres", "":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates the schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Subscription{},
		&models.SupportTicket{},
		&models.ActivityLog{},
	)
}
