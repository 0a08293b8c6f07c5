package domain

import "time"

// Comment has no visibility rule of its own, it inherits the parent
// feedback's board visibility.
type Comment struct {
	Id        CommentId  `json:"id"`
	Feedback  FeedbackId `json:"feedback"`
	Body      string     `json:"body"`
	CreatedBy UserId     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

type CommentCreationData struct {
	Feedback FeedbackId
	Body     string
}
