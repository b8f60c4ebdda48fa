package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"admindash_backend/internal/models"
	"admindash_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_PaginationAndLeniency(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.Login(t)

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		helpers.CreateUser(t, ts.DB, fmt.Sprintf("user%d@test.com", i), base.Add(time.Duration(i)*time.Minute))
	}

	res, body := ts.SendRequest(t, "GET", "/api/v1/users?limit=10", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var page struct {
		Users []models.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Users, 10)
	assert.Equal(t, "user14@test.com", page.Users[0].Email)

	cursor := page.Users[9].ID
	res, body = ts.SendRequest(t, "GET", "/api/v1/users?limit=10&cursor="+cursor, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Len(t, page.Users, 5)

	// Invalid enum filters are ignored, not rejected.
	res, body = ts.SendRequest(t, "GET", "/api/v1/users?status=BOGUS&role=SUPERADMIN&limit=100", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Len(t, page.Users, 15)
}

func TestGetUser_NotFound(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.Login(t)

	res, body := ts.SendRequest(t, "GET", "/api/v1/users/1b671a64-40d5-491e-99b0-da01ff1f3341", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "User not found")
}

func TestUpdateUserStatus(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.Login(t)

	user := helpers.CreateUser(t, ts.DB, "target@test.com", time.Now())

	res, body := ts.SendRequest(t, "PATCH", "/api/v1/users/"+user.ID, token, map[string]interface{}{
		"status": "SUSPENDED",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "SUSPENDED")

	// An off-enum status in a mutation is a validation error, unlike
	// the lenient list filters.
	res, _ = ts.SendRequest(t, "PATCH", "/api/v1/users/"+user.ID, token, map[string]interface{}{
		"status": "BANNED",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestBulkUpdateUsers(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.Login(t)

	a := helpers.CreateUser(t, ts.DB, "a@test.com", time.Now())
	b := helpers.CreateUser(t, ts.DB, "b@test.com", time.Now().Add(time.Second))

	res, body := ts.SendRequest(t, "PATCH", "/api/v1/users/bulk", token, map[string]interface{}{
		"userIds": []string{a.ID, b.ID, "1b671a64-40d5-491e-99b0-da01ff1f3341"},
		"status":  "SUSPENDED",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed struct {
		UpdatedCount int64 `json:"updatedCount"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, int64(2), parsed.UpdatedCount)

	// The audit row reports the same count. The login itself also wrote
	// a row, so take the newest.
	var log models.ActivityLog
	require.NoError(t, ts.DB.Order("created_at DESC, id DESC").First(&log).Error)
	assert.Equal(t, "Bulk updated 2 users to status SUSPENDED", log.Action)

	var metadata map[string]interface{}
	require.NoError(t, json.Unmarshal(log.Metadata, &metadata))
	assert.Equal(t, float64(2), metadata["count"])
}

func TestUserStats(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.Login(t)

	admin := helpers.CreateUser(t, ts.DB, "admin@test.com", time.Now())
	require.NoError(t, ts.DB.Model(&admin).Update("role", models.UserRoleAdmin).Error)
	helpers.CreateUser(t, ts.DB, "plain@test.com", time.Now().Add(time.Second))

	res, body := ts.SendRequest(t, "GET", "/api/v1/users/stats", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed struct {
		Stats struct {
			Active    int64 `json:"active"`
			Suspended int64 `json:"suspended"`
			Admins    int64 `json:"admins"`
			Users     int64 `json:"users"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, int64(2), parsed.Stats.Active)
	assert.Equal(t, int64(1), parsed.Stats.Admins)
	assert.Equal(t, int64(1), parsed.Stats.Users)
}
