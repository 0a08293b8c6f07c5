package service

import (
	"time"

	"github.com/feedboard-dev/feedboard/internal/access"
	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
	internal_errors "github.com/feedboard-dev/feedboard/internal/errors"
)

// Read-only reporting over feedback, admin/moderator only.
type AnalyticsService interface {
	Summary(actor domain.Actor, board *domain.BoardId, from, to time.Time) (*api.AnalyticsSummaryResponse, error)
	CreatedPerDay(actor domain.Actor, board *domain.BoardId, from, to time.Time) ([]api.StatusOverTimePoint, error)
	TopVoted(actor domain.Actor, board *domain.BoardId, limit int) ([]domain.Feedback, error)
}

type Analytics struct {
	storage AnalyticsStorage
}

type AnalyticsStorage interface {
	FeedbackSummary(board *domain.BoardId, from, to time.Time) (*api.AnalyticsSummaryResponse, error)
	FeedbackCreatedPerDay(board *domain.BoardId, from, to time.Time) ([]api.StatusOverTimePoint, error)
	TopVotedFeedback(board *domain.BoardId, limit int) ([]domain.Feedback, error)
}

func NewAnalytics(storage AnalyticsStorage) AnalyticsService {
	return &Analytics{storage}
}

func (a *Analytics) Summary(actor domain.Actor, board *domain.BoardId, from, to time.Time) (*api.AnalyticsSummaryResponse, error) {
	if !access.IsElevated(actor) {
		return nil, internal_errors.Forbidden("admin or moderator role required")
	}
	return a.storage.FeedbackSummary(board, from, to)
}

func (a *Analytics) CreatedPerDay(actor domain.Actor, board *domain.BoardId, from, to time.Time) ([]api.StatusOverTimePoint, error) {
	if !access.IsElevated(actor) {
		return nil, internal_errors.Forbidden("admin or moderator role required")
	}
	return a.storage.FeedbackCreatedPerDay(board, from, to)
}

func (a *Analytics) TopVoted(actor domain.Actor, board *domain.BoardId, limit int) ([]domain.Feedback, error) {
	if !access.IsElevated(actor) {
		return nil, internal_errors.Forbidden("admin or moderator role required")
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return a.storage.TopVotedFeedback(board, limit)
}
