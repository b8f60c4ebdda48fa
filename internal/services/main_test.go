package services_test

import (
	"errors"
	"testing"
	"time"

	"admindash_backend/database"
	"admindash_backend/internal/models"
	"admindash_backend/internal/services"
	"admindash_backend/internal/services/dto"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func createUser(t *testing.T, db *gorm.DB, email string, createdAt time.Time) models.User {
	t.Helper()

	user := models.User{
		Email:  email,
		Role:   models.UserRoleUser,
		Status: models.UserStatusActive,
	}
	user.CreatedAt = createdAt
	require.NoError(t, db.Create(&user).Error)
	return user
}

func listLogs(t *testing.T, db *gorm.DB) []models.ActivityLog {
	t.Helper()

	var logs []models.ActivityLog
	require.NoError(t, db.Order("created_at ASC, id ASC").Find(&logs).Error)
	return logs
}

// failingActivityService always errors on Record; reads are unused.
type failingActivityService struct{}

func (failingActivityService) Record(models.ActorType, string, models.EntityType, *string, *string, map[string]interface{}) error {
	return errors.New("audit store unavailable")
}

func (failingActivityService) List(dto.ListActivityLogsParams) ([]models.ActivityLog, error) {
	return nil, nil
}

func (failingActivityService) Get(string) (*models.ActivityLog, error) {
	return nil, nil
}

func (failingActivityService) Stats() (*services.ActivityStats, error) {
	return nil, nil
}
