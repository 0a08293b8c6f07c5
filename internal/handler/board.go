package handler

import (
	"net/http"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
	mw "github.com/feedboard-dev/feedboard/internal/middleware"
	"github.com/feedboard-dev/feedboard/internal/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	isPublic := true
	if body.IsPublic != nil {
		isPublic = *body.IsPublic
	}

	actor := mw.ActorFromContext(r)
	board, err := h.board.Create(actor, domain.BoardCreationData{
		Name:        body.Name,
		Description: body.Description,
		IsPublic:    isPublic,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.BoardResponse{Board: *board})
}

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	actor := mw.ActorFromContext(r)
	boards, err := h.board.GetAll(actor)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.BoardListResponse{Boards: boards})
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "boardId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	board, err := h.board.Get(actor, id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.BoardResponse{Board: *board})
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "boardId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.UpdateBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	isPublic := true
	if body.IsPublic != nil {
		isPublic = *body.IsPublic
	}

	actor := mw.ActorFromContext(r)
	if err := h.board.Update(actor, id, domain.BoardUpdateData{
		Name:        body.Name,
		Description: body.Description,
		IsPublic:    isPublic,
	}); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "boardId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := mw.ActorFromContext(r)
	if err := h.board.Delete(actor, id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
