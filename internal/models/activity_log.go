package models

import "gorm.io/datatypes"

type ActorType string

const (
	ActorTypeUser   ActorType = "USER"
	ActorTypeAdmin  ActorType = "ADMIN"
	ActorTypeSystem ActorType = "SYSTEM"
)

func (a ActorType) IsValid() bool {
	switch a {
	case ActorTypeUser, ActorTypeAdmin, ActorTypeSystem:
		return true
	}
	return false
}

type EntityType string

const (
	EntityTypeUser         EntityType = "USER"
	EntityTypeSubscription EntityType = "SUBSCRIPTION"
	EntityTypeTicket       EntityType = "TICKET"
	EntityTypeSystem       EntityType = "SYSTEM"
)

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeSubscription, EntityTypeTicket, EntityTypeSystem:
		return true
	}
	return false
}

// ActivityLog rows are append-only; application code never updates or
// deletes them outside seed resets.
type ActivityLog struct {
	BaseModel
	ActorType ActorType `gorm:"type:varchar(20);not null;default:'USER'" json:"actorType"`
	// ActorID references an actor by id without an enforced FK: system
	// events have no actor row to point at.
	ActorID    *string        `gorm:"type:uuid" json:"actorId"`
	Action     string         `gorm:"not null" json:"action"`
	EntityType EntityType     `gorm:"type:varchar(20);not null" json:"entityType"`
	EntityID   *string        `gorm:"type:uuid" json:"entityId"`
	Metadata   datatypes.JSON `json:"metadata"`
	UserID     *string        `gorm:"type:uuid;index" json:"userId"`
}
