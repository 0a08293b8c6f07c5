package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
	mw "github.com/feedboard-dev/feedboard/internal/middleware"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

// CreateInvite handles POST /v1/boards/{boardId}/invites
func (h *Handler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	boardId, err := idParam(r, "boardId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.CreateInviteRequest
	if r.ContentLength > 0 {
		if err := utils.Decode(r.Body, &body); err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
	}

	actor := mw.ActorFromContext(r)
	invite, err := h.invite.Create(actor, domain.InviteCreationData{
		Board:     boardId,
		ExpiresAt: body.ExpiresAt,
		MaxUses:   body.MaxUses,
		Note:      body.Note,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, invite)
}

// GetInvites handles GET /v1/boards/{boardId}/invites
func (h *Handler) GetInvites(w http.ResponseWriter, r *http.Request) {
	boardId, err := idParam(r, "boardId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	invites, err := h.invite.ListForBoard(actor, boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.InviteListResponse{Invites: invites})
}

// AcceptInvite handles POST /v1/invites/{token}/accept
func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	actor := mw.ActorFromContext(r)
	invite, err := h.invite.Accept(actor, token)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.AcceptInviteResponse{
		Board:   invite.Board,
		Message: "You have joined the board",
	})
}

// RevokeInvite handles POST /v1/invites/{token}/revoke
func (h *Handler) RevokeInvite(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	actor := mw.ActorFromContext(r)
	if err := h.invite.Revoke(actor, token); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
