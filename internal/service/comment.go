package service

import (
	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

type CommentService interface {
	Create(actor domain.Actor, data domain.CommentCreationData) (*domain.Comment, error)
	Get(actor domain.Actor, id domain.CommentId) (*domain.Comment, error)
	List(actor domain.Actor, feedback *domain.FeedbackId) ([]domain.Comment, error)
	Update(actor domain.Actor, id domain.CommentId, body string) error
	Delete(actor domain.Actor, id domain.CommentId) error
}

type Comment struct {
	storage   CommentStorage
	feedbacks FeedbackStorage
}

type CommentStorage interface {
	CreateComment(data domain.CommentCreationData, createdBy domain.UserId) (*domain.Comment, error)
	ListComments(scope access.BoardScope, feedback *domain.FeedbackId) ([]domain.Comment, error)
	GetComment(scope access.BoardScope, id domain.CommentId) (*domain.Comment, error)
	GetCommentFacts(scope access.BoardScope, id domain.CommentId, actorId domain.UserId) (access.ObjectFacts, error)
	UpdateComment(id domain.CommentId, body string) error
	DeleteComment(id domain.CommentId) error
}

func NewComment(storage CommentStorage, feedbacks FeedbackStorage) CommentService {
	return &Comment{storage, feedbacks}
}

func (c *Comment) Create(actor domain.Actor, data domain.CommentCreationData) (*domain.Comment, error) {
	// Membership is checked against the parent feedback's board
	facts, err := c.feedbacks.GetFeedbackFacts(access.VisibleBoards(actor), data.Feedback, actor.Id)
	if err != nil {
		return nil, err
	}
	if d := access.Authorize(actor, access.OpCreate, access.ResourceComment, facts); !d.Allowed {
		return nil, internal_errors.Forbidden(d.Reason)
	}

	if data.Body, err = sanitizeRequired(data.Body, "body"); err != nil {
		return nil, err
	}

	return c.storage.CreateComment(data, actor.Id)
}

func (c *Comment) Get(actor domain.Actor, id domain.CommentId) (*domain.Comment, error) {
	return c.storage.GetComment(access.VisibleBoards(actor), id)
}

func (c *Comment) List(actor domain.Actor, feedback *domain.FeedbackId) ([]domain.Comment, error) {
	return c.storage.ListComments(access.VisibleBoards(actor), feedback)
}

func (c *Comment) Update(actor domain.Actor, id domain.CommentId, body string) error {
	facts, err := c.storage.GetCommentFacts(access.VisibleBoards(actor), id, actor.Id)
	if err != nil {
		return err
	}
	if d := access.Authorize(actor, access.OpUpdate, access.ResourceComment, facts); !d.Allowed {
		return internal_errors.Forbidden(d.Reason)
	}

	if body, err = sanitizeRequired(body, "body"); err != nil {
		return err
	}

	return c.storage.UpdateComment(id, body)
}

func (c *Comment) Delete(actor domain.Actor, id domain.CommentId) error {
	facts, err := c.storage.GetCommentFacts(access.VisibleBoards(actor), id, actor.Id)
	if err != nil {
		return err
	}
	if d := access.Authorize(actor, access.OpDelete, access.ResourceComment, facts); !d.Allowed {
		return internal_errors.Forbidden(d.Reason)
	}
	return c.storage.DeleteComment(id)
}
