package service

import (
	"time"

	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

type InviteService interface {
	Create(actor domain.Actor, data domain.InviteCreationData) (*domain.BoardInvite, error)
	ListForBoard(actor domain.Actor, board domain.BoardId) ([]domain.BoardInvite, error)
	Accept(actor domain.Actor, token domain.InviteToken) (*domain.BoardInvite, error)
	Revoke(actor domain.Actor, token domain.InviteToken) error
}

type Invite struct {
	storage  InviteStorage
	boards   BoardStorage
	tokenLen int
}

type InviteStorage interface {
	CreateInvite(data domain.InviteCreationData, token domain.InviteToken, createdBy domain.UserId) (*domain.BoardInvite, error)
	ListInvites(board domain.BoardId) ([]domain.BoardInvite, error)
	GetInviteByToken(token domain.InviteToken) (*domain.BoardInvite, error)
	AcceptInvite(token domain.InviteToken, user domain.UserId, now time.Time) (*domain.BoardInvite, error)
	RevokeInvite(token domain.InviteToken) error
}

func NewInvite(storage InviteStorage, boards BoardStorage, tokenLen int) InviteService {
	return &Invite{storage, boards, tokenLen}
}

func (i *Invite) Create(actor domain.Actor, data domain.InviteCreationData) (*domain.BoardInvite, error) {
	facts, err := i.boards.GetBoardFacts(access.VisibleBoards(actor), data.Board, actor.Id)
	if err != nil {
		return nil, err
	}
	if !access.CanManageInvites(actor, facts.BoardCreatedBy) {
		return nil, internal_errors.Forbidden("Only the board creator or a moderator can manage invites")
	}

	if data.MaxUses != nil && *data.MaxUses < 1 {
		return nil, &internal_errors.ValidationError{Message: "max_uses must be at least 1"}
	}
	if data.ExpiresAt != nil && !data.ExpiresAt.After(time.Now()) {
		return nil, &internal_errors.ValidationError{Message: "expires_at must be in the future"}
	}
	data.Note = sanitizeText(data.Note)

	token := utils.GenerateInviteToken(i.tokenLen)
	return i.storage.CreateInvite(data, token, actor.Id)
}

func (i *Invite) ListForBoard(actor domain.Actor, board domain.BoardId) ([]domain.BoardInvite, error) {
	facts, err := i.boards.GetBoardFacts(access.VisibleBoards(actor), board, actor.Id)
	if err != nil {
		return nil, err
	}
	if !access.CanManageInvites(actor, facts.BoardCreatedBy) {
		return nil, internal_errors.Forbidden("Only the board creator or a moderator can manage invites")
	}
	return i.storage.ListInvites(board)
}

// Accept consumes the invite and joins the actor to its board. All
// validity and race handling lives in the storage transaction.
func (i *Invite) Accept(actor domain.Actor, token domain.InviteToken) (*domain.BoardInvite, error) {
	if !actor.Authenticated {
		return nil, internal_errors.Unauthorized("Authentication required")
	}
	return i.storage.AcceptInvite(token, actor.Id, time.Now())
}

func (i *Invite) Revoke(actor domain.Actor, token domain.InviteToken) error {
	if !actor.Authenticated {
		return internal_errors.Unauthorized("Authentication required")
	}
	inv, err := i.storage.GetInviteByToken(token)
	if err != nil {
		return err
	}
	if !access.CanRevokeInvite(actor, inv.CreatedBy) {
		return internal_errors.Forbidden("Only the invite creator or a moderator can revoke it")
	}
	return i.storage.RevokeInvite(token)
}
