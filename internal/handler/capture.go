package handler

import (
	"net/http"
	"strings"
	"time"

	model "github.com/MassBabyGeek/ScamHunter-backend/internal/models"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/progression"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/utils"
	"github.com/google/uuid"
)

type CaptureRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hue  int    `json:"hue"`
}

// Capture convertit un jeton AR aperçu en entrée d'inventaire permanente.
// Le flux compose deux commandes du store : CaptureToken puis AddXP, la
// récompense de capture reste une commande séparée.
func (h *Handler) Capture(w http.ResponseWriter, r *http.Request) {
	var req CaptureRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}

	analysis := h.Analyzer.Analyze(req.Name)

	token := model.CapturedToken{
		ID:         id,
		Name:       analysis.TokenName,
		Symbol:     analysis.Symbol,
		RiskScore:  analysis.RiskScore,
		Category:   analysis.Category,
		CapturedAt: time.Now().UnixMilli(),
		XPEarned:   progression.CaptureXP,
		ImageHue:   req.Hue,
	}

	if _, err := h.Store.CaptureToken(token); err != nil {
		utils.Error(w, http.StatusConflict, "could not capture token: "+err.Error())
		return
	}

	state, err := h.Store.AddXP(progression.CaptureXP)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not award capture xp: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"token":    token,
		"analysis": analysis,
		"state":    state,
	})
}

// GetCaptures retourne l'inventaire, du plus récent au plus ancien
func (h *Handler) GetCaptures(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, h.Store.Snapshot().CapturedTokens)
}

// RandomToken génère un jeton éphémère à faire apparaître en mode AR
func (h *Handler) RandomToken(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, h.Analyzer.GenerateToken())
}
