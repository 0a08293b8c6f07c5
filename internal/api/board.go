package api

import (
	"github.com/feedboard-dev/feedboard/internal/domain"
)

// Request DTOs

type CreateBoardRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"` // defaults to public
}

type UpdateBoardRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

// Response DTOs

type BoardResponse struct {
	domain.Board
}

type BoardListResponse struct {
	Boards []domain.Board `json:"boards"`
}
