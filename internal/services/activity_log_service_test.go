package services_test

import (
	"testing"
	"time"

	"admindash_backend/internal/models"
	"admindash_backend/internal/repositories"
	"admindash_backend/internal/services"
	"admindash_backend/internal/services/dto"
	"admindash_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newActivityService(db *gorm.DB) services.ActivityLogService {
	return services.NewActivityLogService(repositories.NewActivityLogRepository(db))
}

func TestActivityRecord_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	service := newActivityService(db)

	user := createUser(t, db, "a@test.com", time.Now())

	err := service.Record(
		models.ActorTypeAdmin,
		"Did a thing",
		models.EntityTypeUser,
		&user.ID,
		nil,
		map[string]interface{}{"reason": "test"},
	)
	require.NoError(t, err)

	logs := listLogs(t, db)
	require.Len(t, logs, 1)
	assert.Equal(t, "Did a thing", logs[0].Action)
	assert.NotEmpty(t, logs[0].ID)
	assert.JSONEq(t, `{"reason":"test"}`, string(logs[0].Metadata))
}

func TestActivityList_InvalidFiltersAreDropped(t *testing.T) {
	db := newTestDB(t)
	service := newActivityService(db)

	require.NoError(t, service.Record(models.ActorTypeSystem, "One", models.EntityTypeSystem, nil, nil, nil))
	require.NoError(t, service.Record(models.ActorTypeAdmin, "Two", models.EntityTypeSystem, nil, nil, nil))

	logs, err := service.List(dto.ListActivityLogsParams{ActorType: "ROBOT"})
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	logs, err = service.List(dto.ListActivityLogsParams{ActorType: "SYSTEM"})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestActivityGet_NotFound(t *testing.T) {
	db := newTestDB(t)
	service := newActivityService(db)

	_, err := service.Get("no-such-id")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestActivityStats_TrailingWindow(t *testing.T) {
	db := newTestDB(t)
	service := newActivityService(db)

	old := models.ActivityLog{
		ActorType:  models.ActorTypeSystem,
		Action:     "Old",
		EntityType: models.EntityTypeSystem,
	}
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Create(&old).Error)

	require.NoError(t, service.Record(models.ActorTypeSystem, "Recent", models.EntityTypeSystem, nil, nil, nil))

	stats, err := service.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Last24h)
}
