package domain

import "slices"

// Actor is the already-authenticated principal attached to a request.
// The zero value is the anonymous actor.
type Actor struct {
	Id            UserId
	Authenticated bool
	Roles         []Role
}

func (a Actor) HasRole(role Role) bool {
	return a.Authenticated && slices.Contains(a.Roles, role)
}

func Anonymous() Actor {
	return Actor{}
}
