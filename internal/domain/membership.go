package domain

import "time"

// MembershipRequest is the self-service path into a public board's
// member set. At most one pending request may exist per (board, user)
// pair; resolved requests stay around as history.
type MembershipRequest struct {
	Id          RequestId     `json:"id"`
	Board       BoardId       `json:"board"`
	User        UserId        `json:"user"`
	Status      RequestStatus `json:"status"`
	Message     string        `json:"message"`
	RequestedAt time.Time     `json:"requested_at"`
	HandledBy   *UserId       `json:"handled_by,omitempty"`
	HandledAt   *time.Time    `json:"handled_at,omitempty"`
}
