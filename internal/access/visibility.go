package access

import "github.com/feedboard-dev/feedboard/internal/domain"

// BoardScope is the visibility predicate for an actor, rooted at the
// board: feedback and comments inherit it through their parent board.
// The storage layer compiles it into the WHERE clause of every list
// and single-object read, so an out-of-scope row is indistinguishable
// from a non-existent one.
//
// Exactly one of the three variants holds:
//   - All:        elevated actors see every row
//   - PublicOnly: anonymous actors see public boards only
//   - otherwise:  UserId sees public boards plus boards they are a
//     member or the creator of
type BoardScope struct {
	All        bool
	PublicOnly bool
	UserId     domain.UserId
}

// VisibleBoards resolves the actor's visibility scope.
func VisibleBoards(a domain.Actor) BoardScope {
	if IsElevated(a) {
		return BoardScope{All: true}
	}
	if !a.Authenticated {
		return BoardScope{PublicOnly: true}
	}
	return BoardScope{UserId: a.Id}
}

// Covers evaluates the scope against already-loaded board facts. The
// SQL rendering in storage must stay equivalent to this function; the
// object-read rule in the authorization table uses it so list-filter
// and object-check paths cannot drift apart.
func (s BoardScope) Covers(f ObjectFacts) bool {
	if s.All {
		return true
	}
	if s.PublicOnly {
		return f.BoardIsPublic
	}
	return f.BoardIsPublic || f.IsBoardMember || f.BoardCreatedBy == s.UserId
}
