package dto

type ListActivityLogsParams struct {
	ActorType  string
	EntityType string
	Cursor     string
	Limit      int
}
