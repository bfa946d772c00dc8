package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	TenantId    TenantId
	Title       BoardTitle
	Description string
	Color       string
}

type BoardUpdateData struct {
	Title       BoardTitle
	Description string
	Color       string
}

type Board struct {
	Id          BoardId   `json:"id" bson:"_id"`
	TenantId    TenantId  `json:"-" bson:"tenantId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Color       string    `json:"color,omitempty" bson:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
