package model

// LeaderboardEntry entrée du classement général.
// Le classement est une fixture statique, pas de synchronisation serveur.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	Captures int    `json:"captures"`
	Accuracy int    `json:"accuracy"`
}
