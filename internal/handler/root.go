package handler

import (
	"net/http"

	"github.com/MassBabyGeek/ScamHunter-backend/internal/utils"
)

// Root affiche toutes les routes disponibles de l'API
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "ScamHunter API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/signin", "description": "Connexion joueur (pseudo d'affichage, bonus quotidien inclus)"},
				{"method": "POST", "path": "/auth/signout", "description": "Déconnexion joueur (la progression survit)"},
			},
			"analysis": []map[string]string{
				{"method": "POST", "path": "/analyze", "description": "Verdict de risque sans enregistrement (body: {name?})"},
				{"method": "POST", "path": "/scans", "description": "Scanner un jeton : analyse + XP + historique"},
				{"method": "GET", "path": "/scans", "description": "Historique de scans (du plus récent au plus ancien)"},
			},
			"captures": []map[string]string{
				{"method": "POST", "path": "/captures", "description": "Capturer un jeton AR : analyse + inventaire + XP"},
				{"method": "GET", "path": "/captures", "description": "Inventaire des jetons capturés"},
				{"method": "GET", "path": "/tokens/random", "description": "Jeton éphémère à faire apparaître en mode AR"},
			},
			"progression": []map[string]string{
				{"method": "GET", "path": "/progression", "description": "État de progression complet"},
				{"method": "POST", "path": "/daily-login", "description": "Réclamer le bonus de connexion quotidien"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement général (param: limit)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour ScamHunter - Chasse aux jetons frauduleux en AR",
			"contact":     "support@scamhunter.app",
		},
	}

	utils.Success(w, routes)
}
