package api

import (
	"net/http"

	"github.com/MassBabyGeek/ScamHunter-backend/internal/handler"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/middleware"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signin", h.SignIn).Methods(http.MethodPost)
	r.HandleFunc("/auth/signout", h.SignOut).Methods(http.MethodPost)

	// Analyse & scans
	r.HandleFunc("/analyze", h.Analyze).Methods(http.MethodPost)
	r.HandleFunc("/scans", h.Scan).Methods(http.MethodPost)
	r.HandleFunc("/scans", h.GetScans).Methods(http.MethodGet)

	// Captures AR
	r.HandleFunc("/captures", h.Capture).Methods(http.MethodPost)
	r.HandleFunc("/captures", h.GetCaptures).Methods(http.MethodGet)
	r.HandleFunc("/tokens/random", h.RandomToken).Methods(http.MethodGet)

	// Progression
	r.HandleFunc("/progression", h.GetProgression).Methods(http.MethodGet)
	r.HandleFunc("/daily-login", h.DailyLogin).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard", h.GetLeaderboard).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
