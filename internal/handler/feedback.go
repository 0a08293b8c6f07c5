package handler

import (
	"net/http"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
	mw "github.com/feedboard-dev/feedboard/internal/middleware"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

func (h *Handler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var body api.CreateFeedbackRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	actor := mw.ActorFromContext(r)
	feedback, err := h.feedback.Create(actor, domain.FeedbackCreationData{
		Board: body.Board,
		Title: body.Title,
		Body:  body.Body,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.FeedbackResponse{Feedback: *feedback})
}

func (h *Handler) GetFeedbacks(w http.ResponseWriter, r *http.Request) {
	var filter domain.FeedbackFilter

	if boardQuery := r.URL.Query().Get("board"); boardQuery != "" {
		board, err := parseIntParam(boardQuery, "board")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter.Board = &board
	}
	if statusQuery := r.URL.Query().Get("status"); statusQuery != "" {
		status := domain.FeedbackStatus(statusQuery)
		filter.Status = &status
	}

	actor := mw.ActorFromContext(r)
	feedbacks, err := h.feedback.List(actor, filter)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.FeedbackListResponse{Feedbacks: feedbacks})
}

func (h *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "feedbackId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	feedback, err := h.feedback.Get(actor, id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.FeedbackResponse{Feedback: *feedback})
}

func (h *Handler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "feedbackId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.UpdateFeedbackRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	actor := mw.ActorFromContext(r)
	if err := h.feedback.Update(actor, id, domain.FeedbackUpdateData{
		Title: body.Title,
		Body:  body.Body,
	}); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "feedbackId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	if err := h.feedback.Delete(actor, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) SetFeedbackStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "feedbackId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.SetStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	actor := mw.ActorFromContext(r)
	if err := h.feedback.SetStatus(actor, id, domain.FeedbackStatus(body.Status)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) UpvoteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "feedbackId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	upvoted, count, err := h.feedback.ToggleUpvote(actor, id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.UpvoteResponse{Upvoted: upvoted, Upvotes: count})
}
