package services

import (
	"admindash_backend/internal/models"
	"admindash_backend/internal/repositories"
	"admindash_backend/internal/services/dto"
	"admindash_backend/pkg/apperrors"
)

type SubscriptionService interface {
	List(p dto.ListSubscriptionsParams) ([]models.Subscription, error)
	Get(id string) (*models.Subscription, error)
	Stats() (*repositories.SubscriptionStats, error)
}

type SubscriptionServiceImpl struct {
	subscriptionRepo repositories.SubscriptionRepository
}

func NewSubscriptionService(subscriptionRepo repositories.SubscriptionRepository) SubscriptionService {
	return &SubscriptionServiceImpl{subscriptionRepo: subscriptionRepo}
}

func (s *SubscriptionServiceImpl) List(p dto.ListSubscriptionsParams) ([]models.Subscription, error) {
	f := repositories.SubscriptionFilter{
		Cursor: p.Cursor,
		Limit:  pageLimit(p.Limit),
	}
	if st := models.SubscriptionStatus(p.Status); p.Status != "" && st.IsValid() {
		f.Status = st
	}

	subscriptions, err := s.subscriptionRepo.List(f)
	if err != nil {
		return nil, apperrors.DatabaseError("subscriptions", err)
	}
	return subscriptions, nil
}

func (s *SubscriptionServiceImpl) Get(id string) (*models.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.NewNotFoundError("subscriptions", "Subscription not found")
		}
		return nil, apperrors.DatabaseError("subscriptions", err)
	}
	return subscription, nil
}

func (s *SubscriptionServiceImpl) Stats() (*repositories.SubscriptionStats, error) {
	stats, err := s.subscriptionRepo.Stats()
	if err != nil {
		return nil, apperrors.DatabaseError("subscriptions", err)
	}
	return stats, nil
}
