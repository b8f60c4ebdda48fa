package handlers_test

import (
	"net/http/httptest"
	"testing"

	"admindash_backend/internal/handlers"
	"admindash_backend/internal/services"
	"admindash_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryLimitFor(rawQuery string) int {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)

	base := handlers.NewBaseHandler(validator.New())
	return base.QueryLimit(c)
}

func TestQueryLimit(t *testing.T) {
	assert.Equal(t, 25, queryLimitFor("limit=25"))

	// Missing, garbage and non-positive values all fall back to the
	// shared default.
	assert.Equal(t, services.DefaultPageLimit, queryLimitFor(""))
	assert.Equal(t, services.DefaultPageLimit, queryLimitFor("limit=banana"))
	assert.Equal(t, services.DefaultPageLimit, queryLimitFor("limit=0"))
	assert.Equal(t, services.DefaultPageLimit, queryLimitFor("limit=-3"))
}
