package handlers

import (
	"admindash_backend/internal/services"
	"admindash_backend/internal/validator"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Subscriptions *SubscriptionHandler
	Tickets       *SupportTicketHandler
	Activity      *ActivityLogHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:          NewAuthHandler(base, container.Auth),
		Users:         NewUserHandler(base, container.Users),
		Subscriptions: NewSubscriptionHandler(base, container.Subscriptions),
		Tickets:       NewSupportTicketHandler(base, container.Tickets),
		Activity:      NewActivityLogHandler(base, container.Activity),
	}
}
