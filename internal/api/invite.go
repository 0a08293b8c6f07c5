package api

import (
	"time"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

type CreateInviteRequest struct {
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	MaxUses   *int       `json:"max_uses,omitempty"`
	Note      string     `json:"note,omitempty"`
}

type InviteListResponse struct {
	Invites []domain.BoardInvite `json:"invites"`
}

// AcceptInviteResponse reports which board the actor just joined.
type AcceptInviteResponse struct {
	Board   domain.BoardId `json:"board"`
	Message string         `json:"message"`
}
