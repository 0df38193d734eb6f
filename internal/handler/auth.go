package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/MassBabyGeek/ScamHunter-backend/internal/utils"
)

type SignInRequest struct {
	Name string `json:"name"`
}

// SignIn connecte le joueur. Pas de vérification d'identifiants : le nom est
// un simple pseudo d'affichage. La première connexion du jour réclame aussi
// le bonus quotidien via le store.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := utils.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	state := h.Store.SignIn(req.Name)
	utils.Success(w, state)
}

// SignOut déconnecte le joueur. La progression survit à la déconnexion.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	state := h.Store.SignOut()
	utils.Success(w, state)
}
