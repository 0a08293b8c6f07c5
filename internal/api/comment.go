package api

import (
	"github.com/feedboard-dev/feedboard/internal/domain"
)

type CreateCommentRequest struct {
	Feedback int64  `json:"feedback" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

type UpdateCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

type CommentListResponse struct {
	Comments []domain.Comment `json:"comments"`
}
