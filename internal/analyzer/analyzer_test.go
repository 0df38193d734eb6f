package analyzer

import (
	"testing"

	model "github.com/MassBabyGeek/ScamHunter-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAnalyzer analyseur seedé, sans délai
func newTestAnalyzer(t *testing.T, seed int64) *Analyzer {
	t.Helper()
	a, err := New(WithSource(NewSeededSource(seed)), WithDelay(0, 0))
	require.NoError(t, err)
	return a
}

func inPool(pool []string, s string) bool {
	for _, p := range pool {
		if p == s {
			return true
		}
	}
	return false
}

func TestNew_ConfigurationErrors(t *testing.T) {
	t.Run("catalogue vide", func(t *testing.T) {
		_, err := New(WithCatalog(nil))
		assert.Error(t, err)
	})

	t.Run("pools trop petits", func(t *testing.T) {
		_, err := New(WithReasonPools([]string{"a"}, []string{"b"}, []string{"c"}))
		assert.Error(t, err)
	})

	t.Run("fenêtre de délai invalide", func(t *testing.T) {
		_, err := New(WithDelay(100, 50))
		assert.Error(t, err)
	})
}

func TestDeriveSymbol(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"SafeMoon", "SAFE"},
		{"RugPull Finance", "RUGP"},
		{"DeFi Swap", "DEFI"},
		{"FlokiX", "FLOK"},
		{"0x1", "X"},
		{"12345", "TOKN"},
		{"", "TOKN"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, DeriveSymbol(c.name), "name %q", c.name)
	}
}

func TestAnalyze_VerdictShape(t *testing.T) {
	a := newTestAnalyzer(t, 42)

	// Le verdict est aléatoire : on vérifie les bornes sur un grand nombre
	// de tirages plutôt qu'une valeur exacte
	for i := 0; i < 300; i++ {
		res := a.Analyze("")

		assert.GreaterOrEqual(t, res.RiskScore, 0)
		assert.LessOrEqual(t, res.RiskScore, 100)
		assert.Equal(t, model.CategoryFromScore(res.RiskScore), res.Category)

		assert.GreaterOrEqual(t, res.Confidence, 55)
		assert.LessOrEqual(t, res.Confidence, 97)

		assert.GreaterOrEqual(t, len(res.Reasons), 3)
		assert.LessOrEqual(t, len(res.Reasons), 5)
		for _, reason := range res.Reasons {
			assert.NotEmpty(t, reason)
		}

		// Sans remise : pas de doublon dans un même verdict
		seen := map[string]bool{}
		for _, reason := range res.Reasons {
			assert.False(t, seen[reason], "raison dupliquée: %s", reason)
			seen[reason] = true
		}

		assert.Contains(t, defaultTokenNames, res.TokenName)
		assert.NotEmpty(t, res.Symbol)
	}
}

func TestAnalyze_ReasonsMatchCategory(t *testing.T) {
	a := newTestAnalyzer(t, 7)

	for i := 0; i < 300; i++ {
		res := a.Analyze("")

		switch res.Category {
		case model.CategoryScam:
			assert.GreaterOrEqual(t, len(res.Reasons), 3)
			assert.LessOrEqual(t, len(res.Reasons), 4)
			for _, reason := range res.Reasons {
				assert.True(t, inPool(highRiskReasons, reason), "raison hors pool haut risque: %s", reason)
			}
		case model.CategorySuspicious:
			require.Len(t, res.Reasons, 3)
			assert.True(t, inPool(mediumRiskReasons, res.Reasons[0]))
			assert.True(t, inPool(mediumRiskReasons, res.Reasons[1]))
			assert.True(t, inPool(highRiskReasons, res.Reasons[2]))
		case model.CategorySafe:
			require.Len(t, res.Reasons, 3)
			for _, reason := range res.Reasons {
				assert.True(t, inPool(lowRiskReasons, reason), "raison hors pool bas risque: %s", reason)
			}
		}
	}
}

func TestAnalyze_EchoesProvidedName(t *testing.T) {
	a := newTestAnalyzer(t, 1)

	res := a.Analyze("  MetaVerse Inu  ")
	assert.Equal(t, "MetaVerse Inu", res.TokenName)
	assert.Equal(t, "META", res.Symbol)
}

func TestAnalyze_Deterministic(t *testing.T) {
	// Même seed, même entrée : mêmes verdicts
	a1 := newTestAnalyzer(t, 99)
	a2 := newTestAnalyzer(t, 99)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a1.Analyze("PepeCoin"), a2.Analyze("PepeCoin"))
	}
}

func TestSynthesizeFacts_NamePenalty(t *testing.T) {
	a := newTestAnalyzer(t, 3)

	t.Run("sous-chaîne frauduleuse détectée", func(t *testing.T) {
		for _, name := range []string{"RugPull Finance", "HoneypotDAO", "PumpNDump", "ScamSwap", "FakeYield", "DUMPSTER"} {
			facts := a.synthesizeFacts(name)
			assert.Equal(t, namePenalty, facts.NamePenalty, "name %q", name)
		}
	})

	t.Run("nom sain, pas de pénalité", func(t *testing.T) {
		for _, name := range []string{"SafeMoon", "ChainLink Ultra", "CurveDAO"} {
			facts := a.synthesizeFacts(name)
			assert.Zero(t, facts.NamePenalty, "name %q", name)
		}
	})
}

func TestScoreFacts_Bounds(t *testing.T) {
	a := newTestAnalyzer(t, 11)

	t.Run("pire cas borné à 100", func(t *testing.T) {
		worst := model.TokenFacts{
			LiquidityUSD:     500,
			TopHoldersPct:    95,
			ContractVerified: false,
			SocialStrength:   5,
			AgeDays:          2,
			NamePenalty:      namePenalty,
		}
		for i := 0; i < 100; i++ {
			score := a.scoreFacts(worst)
			assert.LessOrEqual(t, score, 100)
			// Toutes les pénalités cumulées dominent largement le bruit
			assert.GreaterOrEqual(t, score, model.ScamThreshold)
		}
	})

	t.Run("meilleur cas reste SAFE", func(t *testing.T) {
		best := model.TokenFacts{
			LiquidityUSD:     450_000,
			TopHoldersPct:    10,
			ContractVerified: true,
			SocialStrength:   90,
			AgeDays:          300,
		}
		for i := 0; i < 100; i++ {
			score := a.scoreFacts(best)
			assert.GreaterOrEqual(t, score, 0)
			assert.Less(t, score, model.SuspiciousThreshold)
		}
	})
}

func TestGenerateToken(t *testing.T) {
	a := newTestAnalyzer(t, 5)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tok := a.GenerateToken()

		assert.Contains(t, defaultTokenNames, tok.Name)
		assert.Equal(t, DeriveSymbol(tok.Name), tok.Symbol)
		assert.GreaterOrEqual(t, tok.Hue, 0)
		assert.Less(t, tok.Hue, 360)

		assert.False(t, seen[tok.ID], "id dupliqué: %s", tok.ID)
		seen[tok.ID] = true
	}
}
