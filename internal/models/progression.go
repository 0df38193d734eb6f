package model

// ProgressionState état de progression complet d'une session.
// C'est aussi la forme sérialisée du blob persisté : les noms de champs JSON
// sont stables entre versions (pas de logique de migration pour l'instant).
type ProgressionState struct {
	IsAuthed bool   `json:"isAuthed"`
	Username string `json:"username"`

	XP    int `json:"xp"`
	Level int `json:"level"`

	CapturedTokens []CapturedToken `json:"capturedTokens"`
	ScanHistory    []ScanResult    `json:"scanHistory"`

	TotalScans    int `json:"totalScans"`
	TotalCaptures int `json:"totalCaptures"`
	Accuracy      int `json:"accuracy"`

	Streak        int    `json:"streak"`
	LastLoginDate string `json:"lastLoginDate,omitempty"`
}
