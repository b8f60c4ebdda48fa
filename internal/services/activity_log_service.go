package services

import (
	"encoding/json"
	"time"

	"admindash_backend/internal/models"
	"admindash_backend/internal/repositories"
	"admindash_backend/internal/services/dto"
	"admindash_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ActivityStats struct {
	Last24h int64 `json:"last24h"`
}

type ActivityLogService interface {
	// Record appends one audit row. Callers on the mutation path treat a
	// failure as best-effort and must not surface it to their caller.
	Record(actorType models.ActorType, action string, entityType models.EntityType, entityID, actorID *string, metadata map[string]interface{}) error
	List(p dto.ListActivityLogsParams) ([]models.ActivityLog, error)
	Get(id string) (*models.ActivityLog, error)
	Stats() (*ActivityStats, error)
}

type ActivityLogServiceImpl struct {
	logRepo repositories.ActivityLogRepository
}

func NewActivityLogService(logRepo repositories.ActivityLogRepository) ActivityLogService {
	return &ActivityLogServiceImpl{logRepo: logRepo}
}

func (s *ActivityLogServiceImpl) Record(actorType models.ActorType, action string, entityType models.EntityType, entityID, actorID *string, metadata map[string]interface{}) error {
	entry := &models.ActivityLog{
		ActorType:  actorType,
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		entry.Metadata = datatypes.JSON(raw)
	}

	return s.logRepo.Create(entry)
}

func (s *ActivityLogServiceImpl) List(p dto.ListActivityLogsParams) ([]models.ActivityLog, error) {
	f := repositories.ActivityLogFilter{
		Cursor: p.Cursor,
		Limit:  pageLimit(p.Limit),
	}
	// Invalid enum filters are dropped, not rejected.
	if at := models.ActorType(p.ActorType); p.ActorType != "" && at.IsValid() {
		f.ActorType = at
	}
	if et := models.EntityType(p.EntityType); p.EntityType != "" && et.IsValid() {
		f.EntityType = et
	}

	logs, err := s.logRepo.List(f)
	if err != nil {
		return nil, apperrors.DatabaseError("activity", err)
	}
	return logs, nil
}

func (s *ActivityLogServiceImpl) Get(id string) (*models.ActivityLog, error) {
	log, err := s.logRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrActivityLogNotFound) {
			return nil, apperrors.NewNotFoundError("activity", "Activity log not found")
		}
		return nil, apperrors.DatabaseError("activity", err)
	}
	return log, nil
}

// Stats recomputes the trailing-24h count on every call.
func (s *ActivityLogServiceImpl) Stats() (*ActivityStats, error) {
	since := time.Now().Add(-24 * time.Hour)
	count, err := s.logRepo.CountSince(since)
	if err != nil {
		return nil, apperrors.DatabaseError("activity", err)
	}
	return &ActivityStats{Last24h: count}, nil
}
