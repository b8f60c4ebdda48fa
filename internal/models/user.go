package models

import "time"

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// IsValid reports whether the value is a known role.
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleUser
}

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusSuspended
}

type User struct {
	BaseModel
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Role      UserRole   `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	Status    UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	LastLogin *time.Time `json:"lastLogin"`

	// Relations
	Subscriptions  []Subscription  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	SupportTickets []SupportTicket `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ActivityLogs   []ActivityLog   `gorm:"foreignKey:UserID" json:"-"`
}
