package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feedboard-dev/feedboard/internal/middleware"
	"github.com/feedboard-dev/feedboard/internal/middleware/metrics"
	"github.com/feedboard-dev/feedboard/internal/setup"
)

// New wires all routes. Reads run with optional authentication so
// anonymous users still see public boards, writes require a token.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestId)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	auth := deps.AuthMiddleware

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Group(func(r chi.Router) {
			r.Use(auth.OptionalAuth())

			r.Get("/boards", h.GetBoards)
			r.Get("/boards/{boardId}", h.GetBoard)
			r.Get("/feedbacks", h.GetFeedbacks)
			r.Get("/feedbacks/{feedbackId}", h.GetFeedback)
			r.Get("/comments", h.GetComments)
			r.Get("/comments/{commentId}", h.GetComment)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.NeedAuth())

			r.Post("/boards", h.CreateBoard)
			r.Put("/boards/{boardId}", h.UpdateBoard)
			r.Delete("/boards/{boardId}", h.DeleteBoard)

			r.Post("/boards/{boardId}/request_membership", h.RequestMembership)
			r.Get("/boards/{boardId}/membership_requests", h.GetMembershipRequests)
			r.Post("/membership_requests/{requestId}/approve", h.ApproveMembershipRequest)
			r.Post("/membership_requests/{requestId}/reject", h.RejectMembershipRequest)

			r.Post("/boards/{boardId}/invites", h.CreateInvite)
			r.Get("/boards/{boardId}/invites", h.GetInvites)
			r.Post("/invites/{token}/accept", h.AcceptInvite)
			r.Post("/invites/{token}/revoke", h.RevokeInvite)

			r.Post("/feedbacks", h.CreateFeedback)
			r.Put("/feedbacks/{feedbackId}", h.UpdateFeedback)
			r.Delete("/feedbacks/{feedbackId}", h.DeleteFeedback)
			r.Post("/feedbacks/{feedbackId}/set_status", h.SetFeedbackStatus)
			r.Post("/feedbacks/{feedbackId}/upvote", h.UpvoteFeedback)

			r.Post("/comments", h.CreateComment)
			r.Put("/comments/{commentId}", h.UpdateComment)
			r.Delete("/comments/{commentId}", h.DeleteComment)

			r.Get("/analytics/summary", h.AnalyticsSummary)
			r.Get("/analytics/status_over_time", h.AnalyticsCreatedPerDay)
			r.Get("/analytics/top_voted", h.AnalyticsTopVoted)
		})
	})

	return r
}
