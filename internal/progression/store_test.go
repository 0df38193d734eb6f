package progression

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	model "github.com/MassBabyGeek/ScamHunter-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore stockage en mémoire pour les tests
type memStore struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	failSave bool
	saves    int
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (m *memStore) Save(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.failSave {
		return fmt.Errorf("disk full")
	}
	m.blobs[key] = append([]byte{}, blob...)
	return nil
}

func (m *memStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[key]
	return blob, ok, nil
}

// fixedClock horloge contrôlée par le test
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func (c *fixedClock) advanceDays(n int) { c.t = c.t.AddDate(0, 0, n) }

func newTestStore() (*Store, *memStore, *fixedClock) {
	mem := newMemStore()
	clock := &fixedClock{t: time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)}
	return NewStore(mem, WithClock(clock.now)), mem, clock
}

func scan(category model.RiskCategory) model.ScanResult {
	return model.ScanResult{
		TokenName:  "SafeMoon",
		RiskScore:  50,
		Category:   category,
		Confidence: 80,
		Reasons:    []string{"Team is pseudonymous"},
		ScannedAt:  1700000000000,
	}
}

func capture(id string) model.CapturedToken {
	return model.CapturedToken{
		ID:         id,
		Name:       "PepeCoin",
		Symbol:     "PEPE",
		RiskScore:  42,
		Category:   model.CategorySuspicious,
		CapturedAt: 1700000000000,
		XPEarned:   CaptureXP,
		ImageHue:   120,
	}
}

func TestAddXP(t *testing.T) {
	t.Run("le niveau dérive de l'XP quel que soit le découpage", func(t *testing.T) {
		s, _, _ := newTestStore()
		_, err := s.AddXP(50)
		require.NoError(t, err)
		state, err := s.AddXP(60)
		require.NoError(t, err)

		assert.Equal(t, 110, state.XP)
		assert.Equal(t, 2, state.Level)

		// Même total en un seul appel : même niveau
		s2, _, _ := newTestStore()
		state2, err := s2.AddXP(110)
		require.NoError(t, err)
		assert.Equal(t, state.Level, state2.Level)
	})

	t.Run("bornes de niveau", func(t *testing.T) {
		cases := []struct {
			xp    int
			level int
		}{
			{99, 1},
			{100, 2},
			{200, 3},
		}
		for _, c := range cases {
			s, _, _ := newTestStore()
			state, err := s.AddXP(c.xp)
			require.NoError(t, err)
			assert.Equal(t, c.level, state.Level, "xp %d", c.xp)
		}
	})

	t.Run("montant invalide refusé", func(t *testing.T) {
		s, _, _ := newTestStore()
		for _, amount := range []int{0, -5} {
			state, err := s.AddXP(amount)
			assert.Error(t, err, "amount %d", amount)
			assert.Zero(t, state.XP)
			assert.Equal(t, 1, state.Level)
		}
	})
}

func TestCaptureToken(t *testing.T) {
	t.Run("insertion en tête, du plus récent au plus ancien", func(t *testing.T) {
		s, _, _ := newTestStore()

		_, err := s.CaptureToken(capture("A"))
		require.NoError(t, err)
		state, err := s.CaptureToken(capture("B"))
		require.NoError(t, err)

		require.Len(t, state.CapturedTokens, 2)
		assert.Equal(t, "B", state.CapturedTokens[0].ID)
		assert.Equal(t, "A", state.CapturedTokens[1].ID)
		assert.Equal(t, 2, state.TotalCaptures)
	})

	t.Run("capture sans XP : la récompense est un appel séparé", func(t *testing.T) {
		s, _, _ := newTestStore()
		state, err := s.CaptureToken(capture("A"))
		require.NoError(t, err)
		assert.Zero(t, state.XP)
	})

	t.Run("id dupliqué refusé", func(t *testing.T) {
		s, _, _ := newTestStore()
		_, err := s.CaptureToken(capture("A"))
		require.NoError(t, err)

		state, err := s.CaptureToken(capture("A"))
		assert.Error(t, err)
		assert.Equal(t, 1, state.TotalCaptures)
	})

	t.Run("jeton incomplet refusé", func(t *testing.T) {
		s, _, _ := newTestStore()
		_, err := s.CaptureToken(model.CapturedToken{Name: "NoID"})
		assert.Error(t, err)
	})
}

func TestAddScanResult(t *testing.T) {
	t.Run("amorçage : premier scan fixe l'accuracy à 50", func(t *testing.T) {
		for _, category := range []model.RiskCategory{model.CategoryScam, model.CategorySafe} {
			s, _, _ := newTestStore()
			state, err := s.AddScanResult(scan(category))
			require.NoError(t, err)
			assert.Equal(t, 50, state.Accuracy, "category %s", category)
			assert.Equal(t, 1, state.TotalScans)
		}
	})

	t.Run("séquence SCAM, SAFE, SCAM", func(t *testing.T) {
		s, _, _ := newTestStore()

		state, err := s.AddScanResult(scan(model.CategoryScam))
		require.NoError(t, err)
		assert.Equal(t, 50, state.Accuracy)

		// round(1/2 * 100) = 50
		state, err = s.AddScanResult(scan(model.CategorySafe))
		require.NoError(t, err)
		assert.Equal(t, 50, state.Accuracy)

		// round(2/3 * 100) = 67
		state, err = s.AddScanResult(scan(model.CategoryScam))
		require.NoError(t, err)
		assert.Equal(t, 67, state.Accuracy)

		assert.Equal(t, 3, state.TotalScans)
		require.Len(t, state.ScanHistory, 3)
		assert.Equal(t, model.CategoryScam, state.ScanHistory[0].Category)
	})

	t.Run("résultat incomplet refusé", func(t *testing.T) {
		s, _, _ := newTestStore()
		_, err := s.AddScanResult(model.ScanResult{})
		assert.Error(t, err)
	})
}

func TestClaimDailyLogin(t *testing.T) {
	t.Run("deux réclamations le même jour", func(t *testing.T) {
		s, _, _ := newTestStore()

		granted, state := s.ClaimDailyLogin()
		assert.True(t, granted)
		assert.Equal(t, 1, state.Streak)
		assert.Equal(t, DailyLoginXP, state.XP)

		granted, state = s.ClaimDailyLogin()
		assert.False(t, granted)
		assert.Equal(t, 1, state.Streak)
		assert.Equal(t, DailyLoginXP, state.XP)
	})

	t.Run("jour suivant", func(t *testing.T) {
		s, _, clock := newTestStore()

		granted, _ := s.ClaimDailyLogin()
		assert.True(t, granted)

		clock.advanceDays(1)
		granted, state := s.ClaimDailyLogin()
		assert.True(t, granted)
		assert.Equal(t, 2, state.Streak)
		assert.Equal(t, 2*DailyLoginXP, state.XP)
	})

	t.Run("une absence prolongée incrémente quand même le streak", func(t *testing.T) {
		// Pas de détection de rupture de streak
		s, _, clock := newTestStore()

		s.ClaimDailyLogin()
		clock.advanceDays(9)
		granted, state := s.ClaimDailyLogin()

		assert.True(t, granted)
		assert.Equal(t, 2, state.Streak)
	})
}

func TestSignInSignOut(t *testing.T) {
	t.Run("connexion avec pseudo trimé", func(t *testing.T) {
		s, _, _ := newTestStore()
		state := s.SignIn("  Foo  ")

		assert.True(t, state.IsAuthed)
		assert.Equal(t, "Foo", state.Username)
		// La première connexion du jour réclame le bonus quotidien
		assert.Equal(t, 1, state.Streak)
		assert.Equal(t, DailyLoginXP, state.XP)
	})

	t.Run("pseudo vide remplacé par le pseudo par défaut", func(t *testing.T) {
		s, _, _ := newTestStore()
		state := s.SignIn("   ")
		assert.Equal(t, DefaultUsername, state.Username)
	})

	t.Run("reconnexion le même jour : pas de second bonus", func(t *testing.T) {
		s, _, _ := newTestStore()
		s.SignIn("Foo")
		s.SignOut()
		state := s.SignIn("Foo")

		assert.Equal(t, 1, state.Streak)
		assert.Equal(t, DailyLoginXP, state.XP)
	})

	t.Run("la déconnexion préserve la progression", func(t *testing.T) {
		s, _, _ := newTestStore()
		s.SignIn("Foo")
		_, err := s.AddXP(95)
		require.NoError(t, err)

		state := s.SignOut()

		assert.False(t, state.IsAuthed)
		assert.Equal(t, 100, state.XP)
		assert.Equal(t, 2, state.Level)
		assert.Equal(t, "Foo", state.Username)
	})
}

func TestEndToEndScenario(t *testing.T) {
	// Scénario complet d'une nouvelle session
	s, _, _ := newTestStore()

	state := s.SignIn("Foo")
	assert.Equal(t, "Foo", state.Username)
	assert.True(t, state.IsAuthed)
	assert.Equal(t, 1, state.Streak)
	assert.Equal(t, 5, state.XP)
	assert.Equal(t, 1, state.Level)

	state, err := s.AddScanResult(scan(model.CategoryScam))
	require.NoError(t, err)
	assert.Equal(t, 1, state.TotalScans)
	assert.Equal(t, 50, state.Accuracy)

	state, err = s.CaptureToken(capture("tok-1"))
	require.NoError(t, err)
	assert.Equal(t, 1, state.TotalCaptures)

	state, err = s.AddXP(20)
	require.NoError(t, err)
	assert.Equal(t, 25, state.XP)
	assert.Equal(t, 1, state.Level)

	// Invariants structurels
	assert.Equal(t, state.XP/100+1, state.Level)
	assert.Equal(t, len(state.CapturedTokens), state.TotalCaptures)
	assert.Equal(t, len(state.ScanHistory), state.TotalScans)
}

func TestPersistence(t *testing.T) {
	t.Run("chaque commande persiste, un nouveau store réhydrate", func(t *testing.T) {
		mem := newMemStore()
		clock := &fixedClock{t: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}

		s := NewStore(mem, WithClock(clock.now))
		s.SignIn("Hunter")
		_, err := s.AddScanResult(scan(model.CategoryScam))
		require.NoError(t, err)
		_, err = s.CaptureToken(capture("tok-1"))
		require.NoError(t, err)
		before := s.Snapshot()

		s2 := NewStore(mem, WithClock(clock.now))
		require.NoError(t, s2.Load(context.Background()))

		assert.Equal(t, before, s2.Snapshot())
	})

	t.Run("un échec d'écriture ne casse pas la commande", func(t *testing.T) {
		mem := newMemStore()
		mem.failSave = true
		s := NewStore(mem, WithClock((&fixedClock{t: time.Now()}).now))

		state, err := s.AddXP(50)
		require.NoError(t, err)
		assert.Equal(t, 50, state.XP)
	})

	t.Run("blob absent : état initial conservé", func(t *testing.T) {
		s, _, _ := newTestStore()
		require.NoError(t, s.Load(context.Background()))

		state := s.Snapshot()
		assert.False(t, state.IsAuthed)
		assert.Equal(t, DefaultUsername, state.Username)
		assert.Equal(t, 1, state.Level)
		assert.Equal(t, 50, state.Accuracy)
	})
}
