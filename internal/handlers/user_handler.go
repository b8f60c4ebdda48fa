package handlers

import (
	"net/http"

	"admindash_backend/internal/services"
	"admindash_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/stats", h.GetStats)
		users.PATCH("/bulk", h.BulkUpdateStatus)
		users.GET("/:id", h.GetUser)
		users.PATCH("/:id", h.UpdateStatus)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	params := dto.ListUsersParams{
		Status: c.Query("status"),
		Role:   c.Query("role"),
		Cursor: c.Query("cursor"),
		Limit:  h.QueryLimit(c),
	}

	users, err := h.userService.List(params)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) BulkUpdateStatus(c *gin.Context) {
	var req dto.BulkUpdateUsersRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	count, err := h.userService.BulkUpdateStatus(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updatedCount": count})
}

func (h *UserHandler) GetStats(c *gin.Context) {
	stats, err := h.userService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
