package access

import "github.com/feedboard-dev/feedboard/internal/domain"

type Operation string

const (
	OpRead      Operation = "read"
	OpCreate    Operation = "create"
	OpUpdate    Operation = "update"
	OpDelete    Operation = "delete"
	OpSetStatus Operation = "set_status"
	OpUpvote    Operation = "upvote"
)

type Resource string

const (
	ResourceBoard    Resource = "board"
	ResourceFeedback Resource = "feedback"
	ResourceComment  Resource = "comment"
)

// ObjectFacts carries the per-instance inputs a rule may consult.
// For board-level operations CreatedBy equals BoardCreatedBy. For a
// create, CreatedBy is zero since the object does not exist yet.
type ObjectFacts struct {
	CreatedBy      domain.UserId // author of the object itself
	BoardCreatedBy domain.UserId // creator of the owning board
	BoardIsPublic  bool
	IsBoardMember  bool // actor is in the owning board's member set
}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

type rule func(a domain.Actor, f ObjectFacts) Decision

// One declarative table instead of conditionals scattered across
// handlers. The board row intentionally has no creator exception on
// update: only elevated actors may update or delete boards, unlike
// feedback and comments where the author may.
var rules = map[Resource]map[Operation]rule{
	ResourceBoard: {
		OpRead:   readVisible,
		OpCreate: adminOnly,
		OpUpdate: elevatedOnly,
		OpDelete: adminOnly,
	},
	ResourceFeedback: {
		OpRead:      readVisible,
		OpCreate:    boardMemberOrElevated,
		OpUpdate:    authorOrElevated,
		OpDelete:    authorOrElevated,
		OpSetStatus: elevatedOnly,
		OpUpvote:    boardMemberOrElevated,
	},
	ResourceComment: {
		OpRead:   readVisible,
		OpCreate: boardMemberOrElevated,
		OpUpdate: authorOrElevated,
		OpDelete: authorOrElevated,
	},
}

// Authorize evaluates the rule table for (resource, operation) against
// the actor and object facts. Unknown pairs deny.
func Authorize(a domain.Actor, op Operation, res Resource, f ObjectFacts) Decision {
	ops, ok := rules[res]
	if !ok {
		return deny("unknown resource")
	}
	r, ok := ops[op]
	if !ok {
		return deny("operation not permitted on " + string(res))
	}
	return r(a, f)
}

func readVisible(a domain.Actor, f ObjectFacts) Decision {
	if VisibleBoards(a).Covers(f) {
		return allow()
	}
	return deny("not visible")
}

func adminOnly(a domain.Actor, _ ObjectFacts) Decision {
	if IsAdmin(a) {
		return allow()
	}
	return deny("admin role required")
}

func elevatedOnly(a domain.Actor, _ ObjectFacts) Decision {
	if IsElevated(a) {
		return allow()
	}
	return deny("admin or moderator role required")
}

func authorOrElevated(a domain.Actor, f ObjectFacts) Decision {
	if !a.Authenticated {
		return deny("authentication required")
	}
	if IsElevated(a) || f.CreatedBy == a.Id {
		return allow()
	}
	return deny("only the author or a moderator can modify this")
}

func boardMemberOrElevated(a domain.Actor, f ObjectFacts) Decision {
	if !a.Authenticated {
		return deny("authentication required")
	}
	if IsElevated(a) || f.IsBoardMember || f.BoardCreatedBy == a.Id {
		return allow()
	}
	return deny("must be a board member")
}

// CanManageInvites gates invite creation and listing for a board.
func CanManageInvites(a domain.Actor, boardCreatedBy domain.UserId) bool {
	if !a.Authenticated {
		return false
	}
	return IsElevated(a) || boardCreatedBy == a.Id
}

// CanRevokeInvite gates revocation of a single invite.
func CanRevokeInvite(a domain.Actor, inviteCreatedBy domain.UserId) bool {
	if !a.Authenticated {
		return false
	}
	return IsElevated(a) || inviteCreatedBy == a.Id
}
