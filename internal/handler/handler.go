package handler

import (
	"net/http"

	"github.com/MassBabyGeek/ScamHunter-backend/internal/analyzer"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/progression"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/utils"
)

// Handler regroupe les dépendances injectées dans les handlers HTTP.
// Le store et l'analyseur sont construits une fois dans main et passés ici,
// pas d'état global caché.
type Handler struct {
	Analyzer *analyzer.Analyzer
	Store    *progression.Store
}

func New(a *analyzer.Analyzer, s *progression.Store) *Handler {
	return &Handler{Analyzer: a, Store: s}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
