package handler

import (
	"net/http"

	"github.com/MassBabyGeek/ScamHunter-backend/internal/utils"
)

// GetProgression retourne l'état de progression complet
func (h *Handler) GetProgression(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, h.Store.Snapshot())
}

// DailyLogin réclame le bonus de connexion quotidien. granted=false si le
// bonus du jour a déjà été pris.
func (h *Handler) DailyLogin(w http.ResponseWriter, r *http.Request) {
	granted, state := h.Store.ClaimDailyLogin()
	utils.Success(w, map[string]interface{}{
		"granted": granted,
		"state":   state,
	})
}
