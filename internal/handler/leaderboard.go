package handler

import (
	"net/http"
	"strconv"

	model "github.com/MassBabyGeek/ScamHunter-backend/internal/models"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/utils"
)

// Classement statique livré avec le produit, pas de synchronisation serveur
var leaderboardData = []model.LeaderboardEntry{
	{Rank: 1, Name: "NeonSlayer", Level: 42, XP: 4200, Captures: 312, Accuracy: 94},
	{Rank: 2, Name: "CryptoPhantom", Level: 38, XP: 3800, Captures: 287, Accuracy: 91},
	{Rank: 3, Name: "BlockHunterX", Level: 35, XP: 3500, Captures: 265, Accuracy: 88},
	{Rank: 4, Name: "DeFiNinja", Level: 31, XP: 3100, Captures: 231, Accuracy: 86},
	{Rank: 5, Name: "ChainWarden", Level: 28, XP: 2800, Captures: 198, Accuracy: 84},
	{Rank: 6, Name: "RugDetector", Level: 25, XP: 2500, Captures: 175, Accuracy: 82},
	{Rank: 7, Name: "ScamSheriff", Level: 22, XP: 2200, Captures: 152, Accuracy: 80},
	{Rank: 8, Name: "TokenGuard", Level: 19, XP: 1900, Captures: 134, Accuracy: 78},
	{Rank: 9, Name: "Web3Sentinel", Level: 16, XP: 1600, Captures: 112, Accuracy: 75},
	{Rank: 10, Name: "CyberHawk", Level: 13, XP: 1300, Captures: 89, Accuracy: 72},
}

// GetLeaderboard retourne le classement général (param: limit)
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := len(leaderboardData)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < limit {
			limit = l
		}
	}

	utils.Success(w, leaderboardData[:limit])
}
