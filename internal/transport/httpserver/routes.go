package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"trip-planner-go/internal/config"
	"trip-planner-go/internal/transport/httpserver/handler"
	"trip-planner-go/internal/transport/httpserver/middleware"
	"trip-planner-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if cfg.Env != "test" {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/travelers", handlers.ListTravelers)
		r.Get("/availability/overlap", handlers.GetOverlap)
		r.Get("/availability/calendar", handlers.GetCalendar)
		r.Get("/cities", handlers.ListCities)
		r.Post("/cities", handlers.CreateCity)
		r.Get("/cities/ranking", handlers.CityRanking)
		r.Get("/attractions", handlers.ListAttractions)
		r.Get("/budget/catalog", handlers.GetBudgetCatalog)
		r.Get("/budget/consensus", handlers.GetBudgetConsensus)
		r.Get("/dashboard", handlers.GetDashboard)

		traveler := middleware.NewTraveler(handlers.Travelers, log)
		r.Group(func(r chi.Router) {
			r.Use(traveler.Middleware)

			r.Patch("/travelers/me/avatar", handlers.UpdateAvatar)

			r.Get("/availability/me", handlers.GetMyAvailability)
			r.Put("/availability/me", handlers.SaveMyAvailability)

			r.Get("/cities/me/days", handlers.GetMyCityDays)
			r.Put("/cities/{city_id}/days", handlers.SetCityDays)

			r.Post("/attractions", handlers.CreateAttraction)
			r.Put("/attractions/{attraction_id}/vote", handlers.VoteAttraction)

			r.Get("/budget/me", handlers.GetMyBudget)
			r.Put("/budget/me", handlers.SaveMyBudget)
			r.Post("/budget/estimate", handlers.EstimateBudget)
		})
	})

	return r
}
