package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admindash_backend/database"
	"admindash_backend/internal/app"
	"admindash_backend/internal/config"
	"admindash_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const TestAdminPassword = "test-admin-password"

// TestServer runs the full HTTP stack against a private in-memory
// database, so every test starts from a clean slate.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// One connection only: each pooled connection to :memory: would get
	// its own empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get *sql.DB from GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.JWT.Secret = "test-jwt-secret"
	cfg.JWT.TTLHours = 1
	cfg.Admin.Password = TestAdminPassword

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		sqlDB.Close()
	})

	return &TestServer{Server: server, DB: db}
}

// SendRequest performs an HTTP request against the test server and
// returns the response plus its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return res, string(raw)
}

// Login obtains an admin session token through the real endpoint.
func (ts *TestServer) Login(t *testing.T) string {
	t.Helper()

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"password": TestAdminPassword,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", res.StatusCode, body)
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("Failed to parse login response: %v", err)
	}
	return parsed.Token
}

// CreateUser inserts a user directly, bypassing the API.
func CreateUser(t *testing.T, db *gorm.DB, email string, createdAt time.Time) models.User {
	t.Helper()

	user := models.User{
		Email:  email,
		Role:   models.UserRoleUser,
		Status: models.UserStatusActive,
	}
	user.CreatedAt = createdAt
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

// CreateTicket inserts a support ticket directly, bypassing the API.
func CreateTicket(t *testing.T, db *gorm.DB, userID, title string, createdAt time.Time) models.SupportTicket {
	t.Helper()

	ticket := models.SupportTicket{
		UserID:   userID,
		Title:    title,
		Status:   models.TicketStatusOpen,
		Priority: models.TicketPriorityMedium,
	}
	ticket.CreatedAt = createdAt
	if err := db.Create(&ticket).Error; err != nil {
		t.Fatalf("Failed to create ticket: %v", err)
	}
	return ticket
}
