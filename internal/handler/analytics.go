package handler

import (
	"net/http"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
	mw "github.com/feedboard-dev/feedboard/internal/middleware"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

const defaultAnalyticsWindowDays = 90

func analyticsBoardFilter(r *http.Request) (*domain.BoardId, error) {
	boardQuery := r.URL.Query().Get("board")
	if boardQuery == "" {
		return nil, nil
	}
	board, err := parseIntParam(boardQuery, "board")
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	board, err := analyticsBoardFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	from, to := dateRange(r, defaultAnalyticsWindowDays)

	actor := mw.ActorFromContext(r)
	summary, err := h.analytics.Summary(actor, board, from, to)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, summary)
}

func (h *Handler) AnalyticsCreatedPerDay(w http.ResponseWriter, r *http.Request) {
	board, err := analyticsBoardFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	from, to := dateRange(r, defaultAnalyticsWindowDays)

	actor := mw.ActorFromContext(r)
	points, err := h.analytics.CreatedPerDay(actor, board, from, to)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.StatusOverTimeResponse{Points: points})
}

func (h *Handler) AnalyticsTopVoted(w http.ResponseWriter, r *http.Request) {
	board, err := analyticsBoardFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := 10
	if limitQuery := r.URL.Query().Get("limit"); limitQuery != "" {
		parsed, err := parseIntParam(limitQuery, "limit")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		limit = int(parsed)
	}

	actor := mw.ActorFromContext(r)
	feedbacks, err := h.analytics.TopVoted(actor, board, limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.TopVotedResponse{Feedbacks: feedbacks})
}
