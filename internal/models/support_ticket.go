package models

type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "OPEN"
	TicketStatusResolved TicketStatus = "RESOLVED"
)

func (s TicketStatus) IsValid() bool {
	return s == TicketStatusOpen || s == TicketStatusResolved
}

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"
)

func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

type SupportTicket struct {
	BaseModel
	UserID   string         `gorm:"type:uuid;not null;index" json:"userId"`
	Title    string         `gorm:"not null" json:"title"`
	Status   TicketStatus   `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	Priority TicketPriority `gorm:"type:varchar(20);not null;default:'MEDIUM'" json:"priority"`
}
