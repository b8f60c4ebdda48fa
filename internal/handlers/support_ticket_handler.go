package handlers

import (
	"net/http"

	"admindash_backend/internal/services"
	"admindash_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SupportTicketHandler struct {
	*BaseHandler
	ticketService services.SupportTicketService
}

func NewSupportTicketHandler(base *BaseHandler, ticketService services.SupportTicketService) *SupportTicketHandler {
	return &SupportTicketHandler{
		BaseHandler:   base,
		ticketService: ticketService,
	}
}

func (h *SupportTicketHandler) RegisterRoutes(r *gin.RouterGroup) {
	tickets := r.Group("/tickets")
	{
		tickets.GET("", h.ListTickets)
		tickets.GET("/stats", h.GetStats)
		tickets.PATCH("/bulk", h.BulkUpdateStatus)
		tickets.GET("/:id", h.GetTicket)
		tickets.PATCH("/:id", h.UpdateTicket)
	}
}

func (h *SupportTicketHandler) ListTickets(c *gin.Context) {
	params := dto.ListTicketsParams{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Cursor:   c.Query("cursor"),
		Limit:    h.QueryLimit(c),
	}

	page, err := h.ticketService.List(params)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": page.Tickets, "nextCursor": page.NextCursor})
}

func (h *SupportTicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.ticketService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *SupportTicketHandler) UpdateTicket(c *gin.Context) {
	var req dto.UpdateTicketRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ticket, err := h.ticketService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

func (h *SupportTicketHandler) BulkUpdateStatus(c *gin.Context) {
	var req dto.BulkUpdateTicketsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	count, err := h.ticketService.BulkUpdateStatus(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updatedCount": count})
}

func (h *SupportTicketHandler) GetStats(c *gin.Context) {
	stats, err := h.ticketService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
