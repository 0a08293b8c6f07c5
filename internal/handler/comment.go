package handler

import (
	"net/http"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
	mw "github.com/feedboard-dev/feedboard/internal/middleware"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	actor := mw.ActorFromContext(r)
	comment, err := h.comment.Create(actor, domain.CommentCreationData{
		Feedback: body.Feedback,
		Body:     body.Body,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, comment)
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	var feedback *domain.FeedbackId
	if feedbackQuery := r.URL.Query().Get("feedback"); feedbackQuery != "" {
		id, err := parseIntParam(feedbackQuery, "feedback")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		feedback = &id
	}

	actor := mw.ActorFromContext(r)
	comments, err := h.comment.List(actor, feedback)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.CommentListResponse{Comments: comments})
}

func (h *Handler) GetComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "commentId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	comment, err := h.comment.Get(actor, id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, comment)
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "commentId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.UpdateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	actor := mw.ActorFromContext(r)
	if err := h.comment.Update(actor, id, body.Body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "commentId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	if err := h.comment.Delete(actor, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
