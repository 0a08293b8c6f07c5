package api

import (
	"github.com/feedboard-dev/feedboard/internal/domain"
)

type CreateFeedbackRequest struct {
	Board int64  `json:"board" validate:"required"`
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type UpdateFeedbackRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type FeedbackResponse struct {
	domain.Feedback
}

type FeedbackListResponse struct {
	Feedbacks []domain.Feedback `json:"feedbacks"`
}

// UpvoteResponse reports the toggle outcome and the post-mutation count.
type UpvoteResponse struct {
	Upvoted bool `json:"upvoted"`
	Upvotes int  `json:"upvotes_count"`
}
