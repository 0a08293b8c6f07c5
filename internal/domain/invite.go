package domain

import "time"

// BoardInvite grants board membership to whoever presents its token,
// bypassing the request/approve workflow. Token is set only on the
// freshly created invite; stored invites carry a digest instead.
type BoardInvite struct {
	Id        InviteId    `json:"id"`
	Board     BoardId     `json:"board"`
	Token     InviteToken `json:"token,omitempty"`
	CreatedBy UserId      `json:"created_by"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
	MaxUses   *int        `json:"max_uses,omitempty"`
	Uses      int         `json:"uses"`
	Active    bool        `json:"active"`
	Note      string      `json:"note,omitempty"`
}

// ValidAt reports whether the invite can still be consumed at the
// given moment: active, not expired, uses below the bound.
func (i *BoardInvite) ValidAt(now time.Time) bool {
	if !i.Active {
		return false
	}
	if i.ExpiresAt != nil && !now.Before(*i.ExpiresAt) {
		return false
	}
	if i.MaxUses != nil && i.Uses >= *i.MaxUses {
		return false
	}
	return true
}

type InviteCreationData struct {
	Board     BoardId
	ExpiresAt *time.Time
	MaxUses   *int
	Note      string
}
