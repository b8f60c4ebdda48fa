package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"admindash_backend/database"
	"admindash_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the full
// schema. Capped to one connection: each pooled connection to :memory:
// would otherwise get its own empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// createUser inserts a user with an explicit creation time so ordering
// assertions are deterministic.
func createUser(t *testing.T, db *gorm.DB, i int, createdAt time.Time) models.User {
	t.Helper()

	user := models.User{
		Email:  fmt.Sprintf("user%d@test.com", i),
		Role:   models.UserRoleUser,
		Status: models.UserStatusActive,
	}
	user.CreatedAt = createdAt
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTicket(t *testing.T, db *gorm.DB, userID, title string, createdAt time.Time) models.SupportTicket {
	t.Helper()

	ticket := models.SupportTicket{
		UserID:   userID,
		Title:    title,
		Status:   models.TicketStatusOpen,
		Priority: models.TicketPriorityLow,
	}
	ticket.CreatedAt = createdAt
	require.NoError(t, db.Create(&ticket).Error)
	return ticket
}
