package service

import (
	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

type MembershipService interface {
	Request(actor domain.Actor, board domain.BoardId, message string) (*domain.MembershipRequest, error)
	ListForBoard(actor domain.Actor, board domain.BoardId) ([]domain.MembershipRequest, error)
	Approve(actor domain.Actor, id domain.RequestId) (*domain.MembershipRequest, error)
	Reject(actor domain.Actor, id domain.RequestId) (*domain.MembershipRequest, error)
}

type Membership struct {
	storage MembershipStorage
	boards  BoardStorage
}

type MembershipStorage interface {
	CreateMembershipRequest(board domain.BoardId, user domain.UserId, message string) (*domain.MembershipRequest, error)
	ListMembershipRequests(board domain.BoardId) ([]domain.MembershipRequest, error)
	ResolveMembershipRequest(id domain.RequestId, handler domain.UserId, approve bool) (*domain.MembershipRequest, error)
}

func NewMembership(storage MembershipStorage, boards BoardStorage) MembershipService {
	return &Membership{storage, boards}
}

// Request opens a pending membership request. Only public boards
// accept self-service requests; private boards are joined via invite
// or by an elevated actor approving some other path. A private board
// outside the actor's scope never even resolves here, the facts fetch
// reports not found.
func (m *Membership) Request(actor domain.Actor, board domain.BoardId, message string) (*domain.MembershipRequest, error) {
	if !actor.Authenticated {
		return nil, internal_errors.Unauthorized("Authentication required")
	}

	facts, err := m.boards.GetBoardFacts(access.VisibleBoards(actor), board, actor.Id)
	if err != nil {
		return nil, err
	}
	if facts.IsBoardMember || facts.BoardCreatedBy == actor.Id {
		return nil, internal_errors.Conflict("Already a member of this board")
	}
	if !facts.BoardIsPublic {
		return nil, internal_errors.Forbidden("Private boards do not accept membership requests")
	}

	return m.storage.CreateMembershipRequest(board, actor.Id, sanitizeText(message))
}

func (m *Membership) ListForBoard(actor domain.Actor, board domain.BoardId) ([]domain.MembershipRequest, error) {
	if !access.IsElevated(actor) {
		return nil, internal_errors.Forbidden("admin or moderator role required")
	}
	// Confirm the board exists; elevated scope sees everything
	if _, err := m.boards.GetBoardFacts(access.VisibleBoards(actor), board, actor.Id); err != nil {
		return nil, err
	}
	return m.storage.ListMembershipRequests(board)
}

func (m *Membership) Approve(actor domain.Actor, id domain.RequestId) (*domain.MembershipRequest, error) {
	return m.resolve(actor, id, true)
}

func (m *Membership) Reject(actor domain.Actor, id domain.RequestId) (*domain.MembershipRequest, error) {
	return m.resolve(actor, id, false)
}

func (m *Membership) resolve(actor domain.Actor, id domain.RequestId, approve bool) (*domain.MembershipRequest, error) {
	if !access.IsElevated(actor) {
		return nil, internal_errors.Forbidden("admin or moderator role required")
	}
	return m.storage.ResolveMembershipRequest(id, actor.Id, approve)
}
