package services

import (
	"fmt"
	"strings"

	"admindash_backend/internal/logger"
	"admindash_backend/internal/models"
	"admindash_backend/internal/repositories"
	"admindash_backend/internal/services/dto"
	"admindash_backend/pkg/apperrors"
)

// TicketPage bundles a page of tickets with the continuation cursor.
// NextCursor is nil when the listing is exhausted.
type TicketPage struct {
	Tickets    []models.SupportTicket
	NextCursor *string
}

type SupportTicketService interface {
	List(p dto.ListTicketsParams) (*TicketPage, error)
	Get(id string) (*models.SupportTicket, error)
	Update(id string, req *dto.UpdateTicketRequest) (*models.SupportTicket, error)
	BulkUpdateStatus(req *dto.BulkUpdateTicketsRequest) (int64, error)
	Stats() (*repositories.TicketStats, error)
}

type SupportTicketServiceImpl struct {
	ticketRepo repositories.SupportTicketRepository
	activity   ActivityLogService
}

func NewSupportTicketService(ticketRepo repositories.SupportTicketRepository, activity ActivityLogService) SupportTicketService {
	return &SupportTicketServiceImpl{
		ticketRepo: ticketRepo,
		activity:   activity,
	}
}

func (s *SupportTicketServiceImpl) List(p dto.ListTicketsParams) (*TicketPage, error) {
	f := repositories.TicketFilter{
		Cursor: p.Cursor,
		Limit:  pageLimit(p.Limit),
	}
	// Invalid enum filters are dropped, not rejected.
	if st := models.TicketStatus(p.Status); p.Status != "" && st.IsValid() {
		f.Status = st
	}
	if pr := models.TicketPriority(p.Priority); p.Priority != "" && pr.IsValid() {
		f.Priority = pr
	}

	tickets, nextCursor, err := s.ticketRepo.List(f)
	if err != nil {
		return nil, apperrors.DatabaseError("tickets", err)
	}

	page := &TicketPage{Tickets: tickets}
	if nextCursor != "" {
		page.NextCursor = &nextCursor
	}
	return page, nil
}

func (s *SupportTicketServiceImpl) Get(id string) (*models.SupportTicket, error) {
	ticket, err := s.ticketRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.NewNotFoundError("tickets", "Support ticket not found")
		}
		return nil, apperrors.DatabaseError("tickets", err)
	}
	return ticket, nil
}

func (s *SupportTicketServiceImpl) Update(id string, req *dto.UpdateTicketRequest) (*models.SupportTicket, error) {
	updates := map[string]interface{}{}
	var fields []string

	if req.Title != nil {
		updates["title"] = *req.Title
		fields = append(fields, "title")
	}
	if req.Status != nil {
		updates["status"] = *req.Status
		fields = append(fields, "status")
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
		fields = append(fields, "priority")
	}

	if len(updates) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	ticket, err := s.ticketRepo.UpdateFields(id, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.NewNotFoundError("tickets", "Support ticket not found")
		}
		return nil, apperrors.DatabaseError("tickets", err)
	}

	// Audit is best-effort: the ticket update already committed.
	if err := s.activity.Record(
		models.ActorTypeAdmin,
		fmt.Sprintf("Updated ticket: %s", strings.Join(fields, ", ")),
		models.EntityTypeTicket,
		&ticket.ID,
		nil,
		map[string]interface{}{"updates": updates},
	); err != nil {
		logger.Error("failed to write audit log for ticket update", "ticket_id", id, "error", err)
	}

	return ticket, nil
}

func (s *SupportTicketServiceImpl) BulkUpdateStatus(req *dto.BulkUpdateTicketsRequest) (int64, error) {
	status := models.TicketStatus(req.Status)

	count, err := s.ticketRepo.BulkUpdateStatus(req.TicketIDs, status)
	if err != nil {
		return 0, apperrors.DatabaseError("tickets", err)
	}

	if err := s.activity.Record(
		models.ActorTypeAdmin,
		fmt.Sprintf("Bulk updated %d tickets to status %s", count, status),
		models.EntityTypeTicket,
		nil,
		nil,
		map[string]interface{}{"ticketIds": req.TicketIDs, "status": status, "count": count},
	); err != nil {
		logger.Error("failed to write audit log for bulk ticket update", "count", count, "error", err)
	}

	return count, nil
}

func (s *SupportTicketServiceImpl) Stats() (*repositories.TicketStats, error) {
	stats, err := s.ticketRepo.Stats()
	if err != nil {
		return nil, apperrors.DatabaseError("tickets", err)
	}
	return stats, nil
}
