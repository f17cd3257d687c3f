package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/habit-tracker/docs"
	"github.com/blaisecz/habit-tracker/internal/api/handler"
	"github.com/blaisecz/habit-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler      *handler.UserHandler
	habitHandler     *handler.HabitHandler
	analyticsHandler *handler.AnalyticsHandler
	coachingHandler  *handler.CoachingHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	habitHandler *handler.HabitHandler,
	analyticsHandler *handler.AnalyticsHandler,
	coachingHandler *handler.CoachingHandler,
) *Router {
	return &Router{
		userHandler:      userHandler,
		habitHandler:     habitHandler,
		analyticsHandler: analyticsHandler,
		coachingHandler:  coachingHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				// Habits and their progress
				r.Route("/habits", func(r chi.Router) {
					r.Post("/", rt.habitHandler.Create)
					r.Get("/", rt.habitHandler.List)

					r.Route("/{habitId}", func(r chi.Router) {
						r.Get("/", rt.habitHandler.Get)
						r.Post("/start", rt.habitHandler.Start)
						r.Get("/progress", rt.habitHandler.GetProgress)
						r.Post("/completions", rt.habitHandler.LogCompletion)
						r.Post("/research-views", rt.habitHandler.RecordResearchView)
						r.Get("/difficulty", rt.analyticsHandler.GetHabitDifficulty)
					})
				})

				// Engine outputs
				r.Get("/analytics", rt.analyticsHandler.GetAnalytics)
				r.Get("/difficulty", rt.analyticsHandler.GetDifficulty)
				r.Get("/recovery", rt.analyticsHandler.GetRecovery)
				r.Get("/recovery/coaching", rt.coachingHandler.GetCoaching)
				r.Post("/recovery/coaching/feedback", rt.coachingHandler.PostFeedback)
				r.Get("/badges", rt.analyticsHandler.GetBadges)
				r.Get("/dashboard", rt.analyticsHandler.GetDashboard)
			})
		})
	})

	return r
}
