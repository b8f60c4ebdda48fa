package dto

type ListSubscriptionsParams struct {
	Status string
	Cursor string
	Limit  int
}
