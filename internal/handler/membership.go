package handler

import (
	"net/http"

	"github.com/feedboard-dev/feedboard/internal/api"
	mw "github.com/feedboard-dev/feedboard/internal/middleware"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

// RequestMembership handles POST /v1/boards/{boardId}/request_membership
func (h *Handler) RequestMembership(w http.ResponseWriter, r *http.Request) {
	boardId, err := idParam(r, "boardId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Message is optional, an empty body is fine
	var body api.RequestMembershipRequest
	if r.ContentLength > 0 {
		if err := utils.Decode(r.Body, &body); err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
	}

	actor := mw.ActorFromContext(r)
	request, err := h.membership.Request(actor, boardId, body.Message)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, request)
}

// GetMembershipRequests handles GET /v1/boards/{boardId}/membership_requests
func (h *Handler) GetMembershipRequests(w http.ResponseWriter, r *http.Request) {
	boardId, err := idParam(r, "boardId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	requests, err := h.membership.ListForBoard(actor, boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.MembershipRequestListResponse{Requests: requests})
}

// ApproveMembershipRequest handles POST /v1/membership_requests/{requestId}/approve
func (h *Handler) ApproveMembershipRequest(w http.ResponseWriter, r *http.Request) {
	h.resolveMembershipRequest(w, r, true)
}

// RejectMembershipRequest handles POST /v1/membership_requests/{requestId}/reject
func (h *Handler) RejectMembershipRequest(w http.ResponseWriter, r *http.Request) {
	h.resolveMembershipRequest(w, r, false)
}

func (h *Handler) resolveMembershipRequest(w http.ResponseWriter, r *http.Request, approve bool) {
	id, err := idParam(r, "requestId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	var request any
	if approve {
		request, err = h.membership.Approve(actor, id)
	} else {
		request, err = h.membership.Reject(actor, id)
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, request)
}
