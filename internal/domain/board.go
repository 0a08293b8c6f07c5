package domain

import "time"

type Board struct {
	Id          BoardId   `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"is_public"`
	CreatedBy   UserId    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	Members     []UserId  `json:"members"`
}

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name        string
	Description string
	IsPublic    bool
}

type BoardUpdateData struct {
	Name        string
	Description string
	IsPublic    bool
}
