package domain

type ColumnCreationData struct {
	TenantId TenantId
	BoardId  BoardId
	Title    string
	Color    string
}

type ColumnUpdateData struct {
	Title string
	Color string
}

// Column positions order columns within a board. They are assigned on
// creation (append at the end) and never renumbered automatically.
type Column struct {
	Id       ColumnId `json:"id" bson:"_id"`
	TenantId TenantId `json:"-" bson:"tenantId"`
	BoardId  BoardId  `json:"boardId" bson:"boardId"`
	Title    string   `json:"title" bson:"title"`
	Position Position `json:"position" bson:"position"`
	Color    string   `json:"color,omitempty" bson:"color,omitempty"`
}
