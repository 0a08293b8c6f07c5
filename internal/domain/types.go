package domain

type (
	UserId     = int64
	BoardId    = int64
	FeedbackId = int64
	CommentId  = int64
	RequestId  = int64
	InviteId   = int64

	InviteToken = string
)

type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleModerator   Role = "Moderator"
	RoleContributor Role = "Contributor"
)

type FeedbackStatus string

const (
	StatusOpen       FeedbackStatus = "open"
	StatusInProgress FeedbackStatus = "in_progress"
	StatusCompleted  FeedbackStatus = "completed"
)

// Valid reports whether s is one of the known feedback statuses.
func (s FeedbackStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)
