package dto

type ListTicketsParams struct {
	Status   string
	Priority string
	Cursor   string
	Limit    int
}

// UpdateTicketRequest is a partial update; nil fields are left untouched.
type UpdateTicketRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Status   *string `json:"status" validate:"omitempty,oneof=OPEN RESOLVED"`
	Priority *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

type BulkUpdateTicketsRequest struct {
	TicketIDs []string `json:"ticketIds" validate:"required,min=1"`
	Status    string   `json:"status" validate:"required,oneof=OPEN RESOLVED"`
}
