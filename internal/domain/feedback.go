package domain

import "time"

type Feedback struct {
	Id        FeedbackId     `json:"id"`
	Board     BoardId        `json:"board"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Status    FeedbackStatus `json:"status"`
	CreatedBy UserId         `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Upvotes   int            `json:"upvotes_count"`
}

type FeedbackCreationData struct {
	Board BoardId
	Title string
	Body  string
}

type FeedbackUpdateData struct {
	Title string
	Body  string
}

// FeedbackFilter narrows a feedback listing. Filters compose with the
// visibility scope, they never replace it.
type FeedbackFilter struct {
	Board  *BoardId
	Status *FeedbackStatus
}
