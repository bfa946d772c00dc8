package domain

type (
	TenantId = string

	BoardId    = string
	BoardTitle = string

	ColumnId = string
	CardId   = string

	// Position is a zero-based ordinal among siblings.
	Position = int
)
