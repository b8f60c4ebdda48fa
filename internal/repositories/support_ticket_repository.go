package repositories

import (
	"errors"

	"admindash_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("support ticket not found")

type TicketFilter struct {
	Status   models.TicketStatus
	Priority models.TicketPriority
	Cursor   string
	Limit    int
}

type TicketStats struct {
	Open     int64 `json:"open"`
	Resolved int64 `json:"resolved"`
	Urgent   int64 `json:"urgent"`
}

type SupportTicketRepository interface {
	List(f TicketFilter) ([]models.SupportTicket, string, error)
	FindByID(id string) (*models.SupportTicket, error)
	UpdateFields(id string, updates map[string]interface{}) (*models.SupportTicket, error)
	BulkUpdateStatus(ids []string, status models.TicketStatus) (int64, error)
	Stats() (*TicketStats, error)
}

type SupportTicketRepositoryImpl struct {
	db *gorm.DB
}

func NewSupportTicketRepository(db *gorm.DB) SupportTicketRepository {
	return &SupportTicketRepositoryImpl{db: db}
}

// List pages tickets newest-first using the fetch-one-extra discipline:
// limit+1 rows are read, the extra row's id becomes nextCursor, and a
// supplied cursor is inclusive so the page starts at the cursor row.
// nextCursor is "" when the listing is exhausted.
func (r *SupportTicketRepositoryImpl) List(f TicketFilter) ([]models.SupportTicket, string, error) {
	query := r.db.Model(&models.SupportTicket{})

	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		query = query.Where("priority = ?", f.Priority)
	}

	if f.Cursor != "" {
		var cursorRow models.SupportTicket
		err := r.db.Select("id", "created_at").First(&cursorRow, "id = ?", f.Cursor).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []models.SupportTicket{}, "", nil
			}
			return nil, "", err
		}
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id <= ?)",
			cursorRow.CreatedAt, cursorRow.CreatedAt, cursorRow.ID,
		)
	}

	var tickets []models.SupportTicket
	err := query.Order("created_at DESC, id DESC").Limit(f.Limit + 1).Find(&tickets).Error
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(tickets) > f.Limit {
		nextCursor = tickets[f.Limit].ID
		tickets = tickets[:f.Limit]
	}

	return tickets, nextCursor, nil
}

func (r *SupportTicketRepositoryImpl) FindByID(id string) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := r.db.First(&ticket, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

// UpdateFields applies a partial column update to one ticket row.
func (r *SupportTicketRepositoryImpl) UpdateFields(id string, updates map[string]interface{}) (*models.SupportTicket, error) {
	result := r.db.Model(&models.SupportTicket{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTicketNotFound
	}
	return r.FindByID(id)
}

func (r *SupportTicketRepositoryImpl) BulkUpdateStatus(ids []string, status models.TicketStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.SupportTicket{}).Where("id IN ?", ids).Update("status", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *SupportTicketRepositoryImpl) Stats() (*TicketStats, error) {
	stats := &TicketStats{}

	if err := r.db.Model(&models.SupportTicket{}).Where("status = ?", models.TicketStatusOpen).Count(&stats.Open).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.SupportTicket{}).Where("status = ?", models.TicketStatusResolved).Count(&stats.Resolved).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.SupportTicket{}).Where("priority = ?", models.TicketPriorityUrgent).Count(&stats.Urgent).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
