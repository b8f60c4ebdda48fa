package repositories

import (
	"errors"
	"time"

	"admindash_backend/internal/models"

	"gorm.io/gorm"
)

var ErrActivityLogNotFound = errors.New("activity log not found")

type ActivityLogFilter struct {
	ActorType  models.ActorType
	EntityType models.EntityType
	Cursor     string
	Limit      int
}

type ActivityLogRepository interface {
	Create(log *models.ActivityLog) error
	List(f ActivityLogFilter) ([]models.ActivityLog, error)
	FindByID(id string) (*models.ActivityLog, error)
	CountSince(since time.Time) (int64, error)
}

type ActivityLogRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &ActivityLogRepositoryImpl{db: db}
}

// Create appends one log row. Rows are never updated afterwards.
func (r *ActivityLogRepositoryImpl) Create(log *models.ActivityLog) error {
	return r.db.Create(log).Error
}

// List pages logs newest-first with an exclusive last-seen-id cursor,
// same discipline as the user listing.
func (r *ActivityLogRepositoryImpl) List(f ActivityLogFilter) ([]models.ActivityLog, error) {
	query := r.db.Model(&models.ActivityLog{})

	if f.ActorType != "" {
		query = query.Where("actor_type = ?", f.ActorType)
	}
	if f.EntityType != "" {
		query = query.Where("entity_type = ?", f.EntityType)
	}

	if f.Cursor != "" {
		var cursorRow models.ActivityLog
		err := r.db.Select("id", "created_at").First(&cursorRow, "id = ?", f.Cursor).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []models.ActivityLog{}, nil
			}
			return nil, err
		}
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			cursorRow.CreatedAt, cursorRow.CreatedAt, cursorRow.ID,
		)
	}

	var logs []models.ActivityLog
	err := query.Order("created_at DESC, id DESC").Limit(f.Limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *ActivityLogRepositoryImpl) FindByID(id string) (*models.ActivityLog, error) {
	var log models.ActivityLog
	err := r.db.First(&log, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityLogNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *ActivityLogRepositoryImpl) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ActivityLog{}).Where("created_at >= ?", since).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
