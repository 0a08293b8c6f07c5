package service

import (
	"fmt"

	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

type FeedbackService interface {
	Create(actor domain.Actor, data domain.FeedbackCreationData) (*domain.Feedback, error)
	Get(actor domain.Actor, id domain.FeedbackId) (*domain.Feedback, error)
	List(actor domain.Actor, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	Update(actor domain.Actor, id domain.FeedbackId, data domain.FeedbackUpdateData) error
	Delete(actor domain.Actor, id domain.FeedbackId) error
	SetStatus(actor domain.Actor, id domain.FeedbackId, status domain.FeedbackStatus) error
	ToggleUpvote(actor domain.Actor, id domain.FeedbackId) (bool, int, error)
}

type Feedback struct {
	storage FeedbackStorage
	boards  BoardStorage
}

type FeedbackStorage interface {
	CreateFeedback(data domain.FeedbackCreationData, createdBy domain.UserId) (*domain.Feedback, error)
	ListFeedback(scope access.BoardScope, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	GetFeedback(scope access.BoardScope, id domain.FeedbackId) (*domain.Feedback, error)
	GetFeedbackFacts(scope access.BoardScope, id domain.FeedbackId, actorId domain.UserId) (access.ObjectFacts, error)
	UpdateFeedback(id domain.FeedbackId, data domain.FeedbackUpdateData) error
	DeleteFeedback(id domain.FeedbackId) error
	SetFeedbackStatus(id domain.FeedbackId, status domain.FeedbackStatus) error
	ToggleUpvote(id domain.FeedbackId, userId domain.UserId) (bool, int, error)
}

func NewFeedback(storage FeedbackStorage, boards BoardStorage) FeedbackService {
	return &Feedback{storage, boards}
}

func (f *Feedback) Create(actor domain.Actor, data domain.FeedbackCreationData) (*domain.Feedback, error) {
	// Target board must be visible before the membership gate applies
	facts, err := f.boards.GetBoardFacts(access.VisibleBoards(actor), data.Board, actor.Id)
	if err != nil {
		return nil, err
	}
	if d := access.Authorize(actor, access.OpCreate, access.ResourceFeedback, facts); !d.Allowed {
		return nil, internal_errors.Forbidden(d.Reason)
	}

	if data.Title, err = sanitizeRequired(data.Title, "title"); err != nil {
		return nil, err
	}
	if data.Body, err = sanitizeRequired(data.Body, "body"); err != nil {
		return nil, err
	}

	return f.storage.CreateFeedback(data, actor.Id)
}

func (f *Feedback) Get(actor domain.Actor, id domain.FeedbackId) (*domain.Feedback, error) {
	return f.storage.GetFeedback(access.VisibleBoards(actor), id)
}

func (f *Feedback) List(actor domain.Actor, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, &internal_errors.ValidationError{Message: fmt.Sprintf("unknown status %q", *filter.Status)}
	}
	return f.storage.ListFeedback(access.VisibleBoards(actor), filter)
}

func (f *Feedback) Update(actor domain.Actor, id domain.FeedbackId, data domain.FeedbackUpdateData) error {
	facts, err := f.storage.GetFeedbackFacts(access.VisibleBoards(actor), id, actor.Id)
	if err != nil {
		return err
	}
	if d := access.Authorize(actor, access.OpUpdate, access.ResourceFeedback, facts); !d.Allowed {
		return internal_errors.Forbidden(d.Reason)
	}

	if data.Title, err = sanitizeRequired(data.Title, "title"); err != nil {
		return err
	}
	if data.Body, err = sanitizeRequired(data.Body, "body"); err != nil {
		return err
	}

	return f.storage.UpdateFeedback(id, data)
}

func (f *Feedback) Delete(actor domain.Actor, id domain.FeedbackId) error {
	facts, err := f.storage.GetFeedbackFacts(access.VisibleBoards(actor), id, actor.Id)
	if err != nil {
		return err
	}
	if d := access.Authorize(actor, access.OpDelete, access.ResourceFeedback, facts); !d.Allowed {
		return internal_errors.Forbidden(d.Reason)
	}
	return f.storage.DeleteFeedback(id)
}

// SetStatus is the only path that moves the status enum; authorship
// grants nothing here.
func (f *Feedback) SetStatus(actor domain.Actor, id domain.FeedbackId, status domain.FeedbackStatus) error {
	if !status.Valid() {
		return &internal_errors.ValidationError{Message: fmt.Sprintf("unknown status %q", status)}
	}
	facts, err := f.storage.GetFeedbackFacts(access.VisibleBoards(actor), id, actor.Id)
	if err != nil {
		return err
	}
	if d := access.Authorize(actor, access.OpSetStatus, access.ResourceFeedback, facts); !d.Allowed {
		return internal_errors.Forbidden(d.Reason)
	}
	return f.storage.SetFeedbackStatus(id, status)
}

func (f *Feedback) ToggleUpvote(actor domain.Actor, id domain.FeedbackId) (bool, int, error) {
	facts, err := f.storage.GetFeedbackFacts(access.VisibleBoards(actor), id, actor.Id)
	if err != nil {
		return false, 0, err
	}
	if d := access.Authorize(actor, access.OpUpvote, access.ResourceFeedback, facts); !d.Allowed {
		return false, 0, internal_errors.Forbidden(d.Reason)
	}
	return f.storage.ToggleUpvote(id, actor.Id)
}
