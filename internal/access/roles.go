// Package access is the authorization core: it decides, for a given
// actor and resource, whether an operation is permitted and which rows
// of a collection are visible. Everything here is pure; role lookup is
// carried inside the Actor so no storage calls happen at the decision
// point.
package access

import "github.com/feedboard-dev/feedboard/internal/domain"

func IsAdmin(a domain.Actor) bool {
	return a.HasRole(domain.RoleAdmin)
}

func IsModerator(a domain.Actor) bool {
	return a.HasRole(domain.RoleModerator)
}

// IsElevated reports whether the actor holds Admin or Moderator.
// Anonymous actors always resolve false.
func IsElevated(a domain.Actor) bool {
	return IsAdmin(a) || IsModerator(a)
}
