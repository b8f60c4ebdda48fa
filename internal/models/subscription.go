package models

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "ACTIVE"
	SubscriptionStatusCanceled SubscriptionStatus = "CANCELED"
	SubscriptionStatusFailed   SubscriptionStatus = "FAILED"
)

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusCanceled, SubscriptionStatusFailed:
		return true
	}
	return false
}

type Subscription struct {
	BaseModel
	UserID string             `gorm:"type:uuid;not null;index" json:"userId"`
	Plan   string             `gorm:"not null" json:"plan"`
	Price  float64            `gorm:"not null" json:"price"`
	Status SubscriptionStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
}
