package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sydqwycs/dajiexiaoxiang/internal/core/ports"
)

func NewHandler(
	pollHandler *PollHandler,
	voteHandler *VoteHandler,
	resultsHandler *ResultsHandler,
	authHandler *AuthHandler,
	adminAuth ports.AdminAuthService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/polls", func(r chi.Router) {
			r.Get("/active", resultsHandler.GetActivePoll)
			r.Get("/history", resultsHandler.GetHistoricalPolls)
			r.Get("/{pollID}/results", resultsHandler.GetPollResults)
		})

		r.Post("/votes", voteHandler.SubmitVote)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin(adminAuth))

			r.Get("/polls", pollHandler.GetAllPolls)
			r.Post("/polls", pollHandler.CreatePoll)
			r.Put("/polls/{pollID}", pollHandler.UpdatePoll)
			r.Delete("/polls/{pollID}", pollHandler.DeletePoll)
		})
	})

	return r
}
