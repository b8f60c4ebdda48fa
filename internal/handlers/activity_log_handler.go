package handlers

import (
	"net/http"

	"admindash_backend/internal/services"
	"admindash_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ActivityLogHandler struct {
	*BaseHandler
	activityService services.ActivityLogService
}

func NewActivityLogHandler(base *BaseHandler, activityService services.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{
		BaseHandler:     base,
		activityService: activityService,
	}
}

func (h *ActivityLogHandler) RegisterRoutes(r *gin.RouterGroup) {
	activity := r.Group("/activity")
	{
		activity.GET("", h.ListActivityLogs)
		activity.GET("/stats", h.GetStats)
		activity.GET("/:id", h.GetActivityLog)
	}
}

func (h *ActivityLogHandler) ListActivityLogs(c *gin.Context) {
	params := dto.ListActivityLogsParams{
		ActorType:  c.Query("actorType"),
		EntityType: c.Query("entityType"),
		Cursor:     c.Query("cursor"),
		Limit:      h.QueryLimit(c),
	}

	logs, err := h.activityService.List(params)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h *ActivityLogHandler) GetActivityLog(c *gin.Context) {
	log, err := h.activityService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"log": log})
}

func (h *ActivityLogHandler) GetStats(c *gin.Context) {
	stats, err := h.activityService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
