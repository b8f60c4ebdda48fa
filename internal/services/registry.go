package services

import (
	"admindash_backend/internal/auth"
	"admindash_backend/internal/repositories"

	"gorm.io/gorm"
)

// DefaultPageLimit is the page size used when the caller supplies none.
const DefaultPageLimit = 10

func pageLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	return limit
}

// ServiceContainer holds every service the handlers need.
type ServiceContainer struct {
	Auth          AuthService
	Users         UserService
	Subscriptions SubscriptionService
	Tickets       SupportTicketService
	Activity      ActivityLogService
}

func NewServiceContainer(db *gorm.DB, verifier auth.CredentialVerifier, tokens *auth.TokenIssuer) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	ticketRepo := repositories.NewSupportTicketRepository(db)
	logRepo := repositories.NewActivityLogRepository(db)

	activityService := NewActivityLogService(logRepo)

	return &ServiceContainer{
		Auth:          NewAuthService(verifier, tokens, activityService),
		Users:         NewUserService(userRepo, activityService),
		Subscriptions: NewSubscriptionService(subscriptionRepo),
		Tickets:       NewSupportTicketService(ticketRepo, activityService),
		Activity:      activityService,
	}
}
