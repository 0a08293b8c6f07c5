package service

import (
	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

// to mock service in tests
type BoardService interface {
	Create(actor domain.Actor, data domain.BoardCreationData) (*domain.Board, error)
	Get(actor domain.Actor, id domain.BoardId) (*domain.Board, error)
	GetAll(actor domain.Actor) ([]domain.Board, error)
	Update(actor domain.Actor, id domain.BoardId, data domain.BoardUpdateData) error
	Delete(actor domain.Actor, id domain.BoardId) error
}

type Board struct {
	storage BoardStorage
}

type BoardStorage interface {
	CreateBoard(data domain.BoardCreationData, createdBy domain.UserId) (*domain.Board, error)
	ListBoards(scope access.BoardScope) ([]domain.Board, error)
	GetBoard(scope access.BoardScope, id domain.BoardId) (*domain.Board, error)
	GetBoardFacts(scope access.BoardScope, id domain.BoardId, actorId domain.UserId) (access.ObjectFacts, error)
	UpdateBoard(id domain.BoardId, data domain.BoardUpdateData) error
	DeleteBoard(id domain.BoardId) error
}

func NewBoard(storage BoardStorage) BoardService {
	return &Board{storage}
}

func (b *Board) Create(actor domain.Actor, data domain.BoardCreationData) (*domain.Board, error) {
	if d := access.Authorize(actor, access.OpCreate, access.ResourceBoard, access.ObjectFacts{}); !d.Allowed {
		return nil, internal_errors.Forbidden(d.Reason)
	}

	name, err := sanitizeRequired(data.Name, "name")
	if err != nil {
		return nil, err
	}
	data.Name = name
	data.Description = sanitizeText(data.Description)

	return b.storage.CreateBoard(data, actor.Id)
}

func (b *Board) Get(actor domain.Actor, id domain.BoardId) (*domain.Board, error) {
	return b.storage.GetBoard(access.VisibleBoards(actor), id)
}

func (b *Board) GetAll(actor domain.Actor) ([]domain.Board, error) {
	return b.storage.ListBoards(access.VisibleBoards(actor))
}

func (b *Board) Update(actor domain.Actor, id domain.BoardId, data domain.BoardUpdateData) error {
	// Existence within the actor's scope first: an invisible board
	// reports not found, never forbidden
	facts, err := b.storage.GetBoardFacts(access.VisibleBoards(actor), id, actor.Id)
	if err != nil {
		return err
	}
	if d := access.Authorize(actor, access.OpUpdate, access.ResourceBoard, facts); !d.Allowed {
		return internal_errors.Forbidden(d.Reason)
	}

	name, err := sanitizeRequired(data.Name, "name")
	if err != nil {
		return err
	}
	data.Name = name
	data.Description = sanitizeText(data.Description)

	return b.storage.UpdateBoard(id, data)
}

func (b *Board) Delete(actor domain.Actor, id domain.BoardId) error {
	facts, err := b.storage.GetBoardFacts(access.VisibleBoards(actor), id, actor.Id)
	if err != nil {
		return err
	}
	if d := access.Authorize(actor, access.OpDelete, access.ResourceBoard, facts); !d.Allowed {
		return internal_errors.Forbidden(d.Reason)
	}
	return b.storage.DeleteBoard(id)
}
