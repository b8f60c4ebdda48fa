package repositories

import (
	"errors"

	"admindash_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionFilter struct {
	Status models.SubscriptionStatus
	Cursor string
	Limit  int
}

type SubscriptionStats struct {
	Active   int64 `json:"active"`
	Canceled int64 `json:"canceled"`
	Failed   int64 `json:"failed"`
}

type SubscriptionRepository interface {
	List(f SubscriptionFilter) ([]models.Subscription, error)
	FindByID(id string) (*models.Subscription, error)
	Stats() (*SubscriptionStats, error)
}

type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

// List pages subscriptions in ascending id order with a strict-greater
// cursor. Simpler than the time-ordered discipline; kept per-entity as
// documented behavior.
func (r *SubscriptionRepositoryImpl) List(f SubscriptionFilter) ([]models.Subscription, error) {
	query := r.db.Model(&models.Subscription{})

	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Cursor != "" {
		query = query.Where("id > ?", f.Cursor)
	}

	var subscriptions []models.Subscription
	err := query.Order("id ASC").Limit(f.Limit).Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (r *SubscriptionRepositoryImpl) FindByID(id string) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.First(&subscription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *SubscriptionRepositoryImpl) Stats() (*SubscriptionStats, error) {
	stats := &SubscriptionStats{}

	statuses := map[models.SubscriptionStatus]*int64{
		models.SubscriptionStatusActive:   &stats.Active,
		models.SubscriptionStatusCanceled: &stats.Canceled,
		models.SubscriptionStatusFailed:   &stats.Failed,
	}
	for status, dest := range statuses {
		err := r.db.Model(&models.Subscription{}).Where("status = ?", status).Count(dest).Error
		if err != nil {
			return nil, err
		}
	}

	return stats, nil
}
