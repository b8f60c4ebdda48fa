package dto

// ListUsersParams carries raw query values; enum validation happens in the
// service so invalid filters degrade to "no filter" instead of erroring.
type ListUsersParams struct {
	Status string
	Role   string
	Cursor string
	Limit  int
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE SUSPENDED"`
}

type BulkUpdateUsersRequest struct {
	UserIDs []string `json:"userIds" validate:"required,min=1"`
	Status  string   `json:"status" validate:"required,oneof=ACTIVE SUSPENDED"`
}
