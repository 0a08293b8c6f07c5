package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/feedboard-dev/feedboard/internal/service"
)

// Pinger is the storage health probe.
type Pinger interface {
	Ping() error
}

type Handler struct {
	board      service.BoardService
	feedback   service.FeedbackService
	comment    service.CommentService
	membership service.MembershipService
	invite     service.InviteService
	analytics  service.AnalyticsService
	pinger     Pinger
}

func New(
	board service.BoardService,
	feedback service.FeedbackService,
	comment service.CommentService,
	membership service.MembershipService,
	invite service.InviteService,
	analytics service.AnalyticsService,
	pinger Pinger,
) *Handler {
	return &Handler{board, feedback, comment, membership, invite, analytics, pinger}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Print(err.Error())
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Print(err.Error())
	}
}
