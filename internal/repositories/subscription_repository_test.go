package repositories_test

import (
	"sort"
	"testing"
	"time"

	"admindash_backend/internal/models"
	"admindash_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createSubscription(t *testing.T, db *gorm.DB, userID string, status models.SubscriptionStatus) models.Subscription {
	t.Helper()

	subscription := models.Subscription{
		UserID: userID,
		Plan:   "Basic",
		Price:  9.99,
		Status: status,
	}
	require.NoError(t, db.Create(&subscription).Error)
	return subscription
}

func TestSubscriptionList_IDOrderAndCursor(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSubscriptionRepository(db)

	user := createUser(t, db, 0, time.Now())
	ids := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		sub := createSubscription(t, db, user.ID, models.SubscriptionStatusActive)
		ids = append(ids, sub.ID)
	}
	sort.Strings(ids)

	first, err := repo.List(repositories.SubscriptionFilter{Limit: 3})
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, ids[:3], []string{first[0].ID, first[1].ID, first[2].ID})

	second, err := repo.List(repositories.SubscriptionFilter{Cursor: first[2].ID, Limit: 3})
	require.NoError(t, err)
	require.Len(t, second, 3)
	assert.Equal(t, ids[3:6], []string{second[0].ID, second[1].ID, second[2].ID})

	third, err := repo.List(repositories.SubscriptionFilter{Cursor: second[2].ID, Limit: 3})
	require.NoError(t, err)
	require.Len(t, third, 1)
	assert.Equal(t, ids[6], third[0].ID)
}

func TestSubscriptionList_StatusFilter(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSubscriptionRepository(db)

	user := createUser(t, db, 0, time.Now())
	createSubscription(t, db, user.ID, models.SubscriptionStatusActive)
	canceled := createSubscription(t, db, user.ID, models.SubscriptionStatusCanceled)

	subscriptions, err := repo.List(repositories.SubscriptionFilter{Status: models.SubscriptionStatusCanceled, Limit: 10})
	require.NoError(t, err)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, canceled.ID, subscriptions[0].ID)
}

func TestSubscriptionFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSubscriptionRepository(db)

	user := createUser(t, db, 0, time.Now())
	sub := createSubscription(t, db, user.ID, models.SubscriptionStatusActive)

	found, err := repo.FindByID(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, found.ID)

	_, err = repo.FindByID("no-such-id")
	assert.ErrorIs(t, err, repositories.ErrSubscriptionNotFound)
}

func TestSubscriptionStats(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewSubscriptionRepository(db)

	user := createUser(t, db, 0, time.Now())
	createSubscription(t, db, user.ID, models.SubscriptionStatusActive)
	createSubscription(t, db, user.ID, models.SubscriptionStatusActive)
	createSubscription(t, db, user.ID, models.SubscriptionStatusCanceled)
	createSubscription(t, db, user.ID, models.SubscriptionStatusFailed)

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Active)
	assert.Equal(t, int64(1), stats.Canceled)
	assert.Equal(t, int64(1), stats.Failed)
}
