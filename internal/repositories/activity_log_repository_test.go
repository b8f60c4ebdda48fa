package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"admindash_backend/internal/models"
	"admindash_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createLog(t *testing.T, db *gorm.DB, action string, createdAt time.Time) models.ActivityLog {
	t.Helper()

	log := models.ActivityLog{
		ActorType:  models.ActorTypeAdmin,
		Action:     action,
		EntityType: models.EntityTypeSystem,
	}
	log.CreatedAt = createdAt
	require.NoError(t, db.Create(&log).Error)
	return log
}

func TestActivityLogList_Pagination(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewActivityLogRepository(db)

	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		createLog(t, db, fmt.Sprintf("Action %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	first, err := repo.List(repositories.ActivityLogFilter{Limit: 4})
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.Equal(t, "Action 6", first[0].Action)

	second, err := repo.List(repositories.ActivityLogFilter{Cursor: first[3].ID, Limit: 4})
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, "Action 2", second[0].Action)
	assert.Equal(t, "Action 0", second[2].Action)
}

func TestActivityLogList_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewActivityLogRepository(db)

	admin := createLog(t, db, "Admin action", time.Now())

	system := models.ActivityLog{
		ActorType:  models.ActorTypeSystem,
		Action:     "System action",
		EntityType: models.EntityTypeSystem,
	}
	require.NoError(t, db.Create(&system).Error)

	logs, err := repo.List(repositories.ActivityLogFilter{ActorType: models.ActorTypeAdmin, Limit: 10})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, admin.ID, logs[0].ID)
}

func TestActivityLogFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewActivityLogRepository(db)

	log := createLog(t, db, "Something happened", time.Now())

	found, err := repo.FindByID(log.ID)
	require.NoError(t, err)
	assert.Equal(t, "Something happened", found.Action)

	_, err = repo.FindByID("no-such-id")
	assert.ErrorIs(t, err, repositories.ErrActivityLogNotFound)
}

func TestActivityLogCountSince(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewActivityLogRepository(db)

	now := time.Now()
	createLog(t, db, "Old", now.Add(-48*time.Hour))
	createLog(t, db, "Recent", now.Add(-time.Hour))
	createLog(t, db, "Very recent", now.Add(-time.Minute))

	count, err := repo.CountSince(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
