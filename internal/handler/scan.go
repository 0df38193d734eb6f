package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/MassBabyGeek/ScamHunter-backend/internal/logger"
	model "github.com/MassBabyGeek/ScamHunter-backend/internal/models"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/progression"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/utils"
)

type AnalyzeRequest struct {
	Name string `json:"name,omitempty"`
}

// Analyze retourne un verdict de risque sans rien enregistrer.
// Un nom absent est remplacé par un tirage dans le catalogue.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := utils.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result := h.Analyzer.Analyze(req.Name)
	logger.Analyze("%s -> %s (score %d)", result.TokenName, result.Category, result.RiskScore)

	utils.Success(w, result)
}

// Scan analyse un jeton, attribue l'XP de scan puis enregistre le résultat
// dans l'historique. Même enchaînement que l'écran scanner du client.
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := utils.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result := h.Analyzer.Analyze(req.Name)

	if _, err := h.Store.AddXP(progression.ScanXP); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not award scan xp: "+err.Error())
		return
	}

	state, err := h.Store.AddScanResult(model.ScanResult{
		TokenName:  result.TokenName,
		RiskScore:  result.RiskScore,
		Category:   result.Category,
		Confidence: result.Confidence,
		Reasons:    result.Reasons,
		ScannedAt:  time.Now().UnixMilli(),
	})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not record scan: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"analysis": result,
		"state":    state,
	})
}

// GetScans retourne l'historique de scans, du plus récent au plus ancien
func (h *Handler) GetScans(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, h.Store.Snapshot().ScanHistory)
}
