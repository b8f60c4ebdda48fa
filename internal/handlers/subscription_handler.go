package handlers

import (
	"net/http"

	"admindash_backend/internal/services"
	"admindash_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	subscriptions := r.Group("/subscriptions")
	{
		subscriptions.GET("", h.ListSubscriptions)
		subscriptions.GET("/stats", h.GetStats)
		subscriptions.GET("/:id", h.GetSubscription)
	}
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	params := dto.ListSubscriptionsParams{
		Status: c.Query("status"),
		Cursor: c.Query("cursor"),
		Limit:  h.QueryLimit(c),
	}

	subscriptions, err := h.subscriptionService.List(params)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions})
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	subscription, err := h.subscriptionService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": subscription})
}

func (h *SubscriptionHandler) GetStats(c *gin.Context) {
	stats, err := h.subscriptionService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
