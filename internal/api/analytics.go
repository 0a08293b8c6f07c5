package api

import (
	"time"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

type AnalyticsSummaryResponse struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

type StatusOverTimePoint struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

type StatusOverTimeResponse struct {
	Points []StatusOverTimePoint `json:"points"`
}

type TopVotedResponse struct {
	Feedbacks []domain.Feedback `json:"feedbacks"`
}
