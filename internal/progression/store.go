// Package progression contient le conteneur d'état unique de la session :
// XP, niveau, inventaire, historique de scans, stats agrégées et streak de
// connexion. Toutes les commandes sont atomiques et recalculent les champs
// dérivés dans le même pas, aucun lecteur ne voit de valeur périmée.
package progression

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	model "github.com/MassBabyGeek/ScamHunter-backend/internal/models"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/storage"
	"github.com/MassBabyGeek/ScamHunter-backend/internal/utils"
)

// Pseudo par défaut quand le joueur se connecte sans nom
const DefaultUsername = "CyberHunter"

// Récompenses XP fixes par action
const (
	DailyLoginXP = 5
	ScanXP       = 10
	CaptureXP    = 20
)

// XP nécessaire par niveau : level = floor(xp/100) + 1
const xpPerLevel = 100

// Accuracy de départ tant que l'historique est vide
const bootstrapAccuracy = 50

// Store conteneur d'état mutable unique. Un seul writer logique ; le mutex
// rend les commandes atomiques vis-à-vis des handlers HTTP concurrents.
// La persistance passe par le port storage après chaque commande réussie :
// un échec d'écriture est loggé et avalé, l'état en mémoire reste valide.
type Store struct {
	mu      sync.Mutex
	state   model.ProgressionState
	storage storage.Store
	now     func() time.Time
}

type Option func(*Store)

// WithClock remplace l'horloge (tests du bonus quotidien)
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore crée un store avec l'état initial d'une nouvelle session
func NewStore(st storage.Store, opts ...Option) *Store {
	s := &Store{
		state: model.ProgressionState{
			Username:       DefaultUsername,
			Level:          1,
			CapturedTokens: []model.CapturedToken{},
			ScanHistory:    []model.ScanResult{},
			Accuracy:       bootstrapAccuracy,
		},
		storage: st,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load réhydrate l'état depuis le blob persisté. À appeler une fois au
// démarrage, avant de servir la moindre lecture. Un blob absent laisse
// l'état initial en place.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, found, err := s.storage.Load(ctx, storage.StateKey)
	if err != nil {
		return fmt.Errorf("could not load progression state: %w", err)
	}
	if !found {
		return nil
	}

	var state model.ProgressionState
	if err := json.Unmarshal(blob, &state); err != nil {
		return fmt.Errorf("could not decode progression state: %w", err)
	}

	// Slices nil après décodage d'un vieux blob
	if state.CapturedTokens == nil {
		state.CapturedTokens = []model.CapturedToken{}
	}
	if state.ScanHistory == nil {
		state.ScanHistory = []model.ScanResult{}
	}
	if state.Username == "" {
		state.Username = DefaultUsername
	}

	s.state = state
	return nil
}

// Snapshot retourne une copie cohérente de l'état. Les entrées elles-mêmes
// sont immuables après création, seules les listes sont copiées.
func (s *Store) Snapshot() model.ProgressionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() model.ProgressionState {
	snap := s.state
	snap.CapturedTokens = append([]model.CapturedToken{}, s.state.CapturedTokens...)
	snap.ScanHistory = append([]model.ScanResult{}, s.state.ScanHistory...)
	return snap
}

// SignIn connecte le joueur. Le nom est trimé, vide = pseudo par défaut.
// La première connexion du jour réclame aussi le bonus quotidien.
func (s *Store) SignIn(name string) model.ProgressionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsAuthed = true
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		s.state.Username = trimmed
	} else {
		s.state.Username = DefaultUsername
	}
	s.claimDailyLoginLocked()

	s.persistLocked()
	return s.snapshotLocked()
}

// SignOut déconnecte le joueur. La progression survit à la déconnexion,
// c'est voulu : seul le flag de session tombe.
func (s *Store) SignOut() model.ProgressionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsAuthed = false

	s.persistLocked()
	return s.snapshotLocked()
}

// AddXP ajoute de l'XP et recalcule le niveau. Le montant doit être
// strictement positif : un montant invalide est un bug de l'appelant.
func (s *Store) AddXP(amount int) (model.ProgressionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return s.snapshotLocked(), fmt.Errorf("xp amount must be positive, got %d", amount)
	}
	s.addXPLocked(amount)

	s.persistLocked()
	return s.snapshotLocked(), nil
}

func (s *Store) addXPLocked(amount int) {
	s.state.XP += amount
	s.state.Level = s.state.XP/xpPerLevel + 1
}

// CaptureToken ajoute un jeton capturé en tête d'inventaire (ordre du plus
// récent au plus ancien). N'attribue pas d'XP : la récompense de capture est
// un AddXP séparé, composé par l'appelant.
func (s *Store) CaptureToken(token model.CapturedToken) (model.ProgressionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token.ID == "" || token.Name == "" {
		return s.snapshotLocked(), fmt.Errorf("captured token is missing id or name")
	}
	for _, t := range s.state.CapturedTokens {
		if t.ID == token.ID {
			return s.snapshotLocked(), fmt.Errorf("token %s already captured", token.ID)
		}
	}

	s.state.CapturedTokens = append([]model.CapturedToken{token}, s.state.CapturedTokens...)
	s.state.TotalCaptures++

	s.persistLocked()
	return s.snapshotLocked(), nil
}

// AddScanResult enregistre un scan en tête d'historique et recalcule
// l'accuracy : proportion arrondie de verdicts SCAM sur tout l'historique mis
// à jour. Règle d'amorçage : le tout premier scan fixe l'accuracy à 50 au
// lieu de la calculer sur un seul point.
func (s *Store) AddScanResult(result model.ScanResult) (model.ProgressionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.TokenName == "" || result.Category == "" {
		return s.snapshotLocked(), fmt.Errorf("scan result is missing token name or category")
	}

	wasEmpty := len(s.state.ScanHistory) == 0
	s.state.ScanHistory = append([]model.ScanResult{result}, s.state.ScanHistory...)
	s.state.TotalScans++

	if wasEmpty {
		s.state.Accuracy = bootstrapAccuracy
	} else {
		scamCount := 0
		for _, r := range s.state.ScanHistory {
			if r.Category == model.CategoryScam {
				scamCount++
			}
		}
		s.state.Accuracy = int(math.Round(float64(scamCount) / float64(len(s.state.ScanHistory)) * 100))
	}

	s.persistLocked()
	return s.snapshotLocked(), nil
}

// ClaimDailyLogin réclame le bonus de connexion quotidien. Retourne false si
// le bonus du jour a déjà été pris. Chaque nouveau jour calendaire incrémente
// le streak, même après une longue absence : la rupture de streak n'est pas
// détectée.
func (s *Store) ClaimDailyLogin() (bool, model.ProgressionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	granted := s.claimDailyLoginLocked()
	if granted {
		s.persistLocked()
	}
	return granted, s.snapshotLocked()
}

func (s *Store) claimDailyLoginLocked() bool {
	today := s.now().Format("2006-01-02")
	if s.state.LastLoginDate == today {
		return false
	}
	s.state.LastLoginDate = today
	s.state.Streak++
	s.addXPLocked(DailyLoginXP)
	return true
}

// persistLocked sérialise l'état et l'écrit via le port de stockage. Un échec
// de persistance ne fait jamais échouer la commande : l'état en mémoire reste
// la vérité, on risque juste de perdre le delta au prochain redémarrage.
func (s *Store) persistLocked() {
	blob, err := json.Marshal(s.state)
	if err != nil {
		utils.LogError("could not encode progression state: %v", err)
		return
	}
	if err := s.storage.Save(context.Background(), storage.StateKey, blob); err != nil {
		utils.LogError("could not persist progression state: %v", err)
	}
}
