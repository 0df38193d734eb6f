package analyzer

import (
	"fmt"
	"strings"
	"sync"
	"time"

	model "github.com/MassBabyGeek/ScamHunter-backend/internal/models"
	"github.com/google/uuid"
)

// Symbole de repli quand le nom ne contient aucune lettre
const fallbackSymbol = "TOKN"

// Pénalité fixe appliquée quand le nom contient une sous-chaîne frauduleuse
const namePenalty = 18

// Fenêtre de délai par défaut, simule la latence d'inférence
const (
	defaultDelayMin = 1500 * time.Millisecond
	defaultDelayMax = 3500 * time.Millisecond
)

// Analyzer simulateur d'analyse de risque. Aucun état partagé en dehors de la
// source de hasard, protégée par mutex pour les appels HTTP concurrents.
type Analyzer struct {
	mu       sync.Mutex
	names    []string
	high     []string
	medium   []string
	low      []string
	rng      Source
	delayMin time.Duration
	delayMax time.Duration
}

type Option func(*Analyzer)

// WithSource remplace la source de hasard (tests déterministes)
func WithSource(s Source) Option {
	return func(a *Analyzer) { a.rng = s }
}

// WithDelay remplace la fenêtre de délai (les tests la mettent à zéro)
func WithDelay(min, max time.Duration) Option {
	return func(a *Analyzer) {
		a.delayMin = min
		a.delayMax = max
	}
}

// WithCatalog remplace le catalogue de noms
func WithCatalog(names []string) Option {
	return func(a *Analyzer) { a.names = names }
}

// WithReasonPools remplace les pools de raisons
func WithReasonPools(high, medium, low []string) Option {
	return func(a *Analyzer) {
		a.high = high
		a.medium = medium
		a.low = low
	}
}

// New construit un analyseur. Un catalogue ou un pool vide est une erreur de
// configuration : on échoue à la construction, jamais pendant un appel.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		names:    defaultTokenNames,
		high:     highRiskReasons,
		medium:   mediumRiskReasons,
		low:      lowRiskReasons,
		rng:      newDefaultSource(),
		delayMin: defaultDelayMin,
		delayMax: defaultDelayMax,
	}
	for _, opt := range opts {
		opt(a)
	}

	if len(a.names) == 0 {
		return nil, fmt.Errorf("analyzer: token name catalog is empty")
	}
	if len(a.high) < 4 || len(a.medium) < 2 || len(a.low) < 3 {
		return nil, fmt.Errorf("analyzer: reason pools are too small (high=%d medium=%d low=%d)",
			len(a.high), len(a.medium), len(a.low))
	}
	if a.delayMin < 0 || a.delayMax < a.delayMin {
		return nil, fmt.Errorf("analyzer: invalid delay window [%v, %v]", a.delayMin, a.delayMax)
	}
	return a, nil
}

// Analyze produit un verdict de risque pour un nom de jeton. Si le nom est
// vide, un nom est tiré au hasard dans le catalogue. L'appel bloque pendant
// un délai aléatoire avant de répondre ; rien ne dépend de sa durée.
func (a *Analyzer) Analyze(tokenName string) model.AnalysisResult {
	a.sleep()

	a.mu.Lock()
	defer a.mu.Unlock()

	name := strings.TrimSpace(tokenName)
	if name == "" {
		name = a.names[a.rng.Intn(len(a.names))]
	}

	facts := a.synthesizeFacts(name)
	score := a.scoreFacts(facts)
	category := model.CategoryFromScore(score)

	return model.AnalysisResult{
		RiskScore:  score,
		Category:   category,
		Confidence: a.confidence(category),
		Reasons:    a.pickReasons(category),
		TokenName:  name,
		Symbol:     DeriveSymbol(name),
	}
}

// GenerateToken génère un jeton éphémère à faire apparaître en mode AR
func (a *Analyzer) GenerateToken() model.SpawnedToken {
	a.mu.Lock()
	defer a.mu.Unlock()

	name := a.names[a.rng.Intn(len(a.names))]
	return model.SpawnedToken{
		ID:     uuid.NewString(),
		Name:   name,
		Symbol: DeriveSymbol(name),
		Hue:    a.rng.Intn(360),
	}
}

// DeriveSymbol dérive le symbole d'un nom : lettres uniquement, majuscules,
// tronqué à 4 caractères, "TOKN" si vide
func DeriveSymbol(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
		if b.Len() == 4 {
			break
		}
	}
	if b.Len() == 0 {
		return fallbackSymbol
	}
	return strings.ToUpper(b.String())
}

// sleep bloque pendant un délai tiré dans la fenêtre configurée
func (a *Analyzer) sleep() {
	a.mu.Lock()
	window := a.delayMax - a.delayMin
	d := a.delayMin
	if window > 0 {
		d += time.Duration(a.rng.Intn(int(window)))
	}
	a.mu.Unlock()

	if d > 0 {
		time.Sleep(d)
	}
}

// synthesizeFacts tire des faits indépendants pour un seul calcul de score.
// Seule règle déterministe : la pénalité lexicale sur le nom.
func (a *Analyzer) synthesizeFacts(name string) model.TokenFacts {
	facts := model.TokenFacts{
		LiquidityUSD:     a.rng.Float64() * 500_000,
		TopHoldersPct:    a.rng.Float64() * 100,
		ContractVerified: a.rng.Intn(2) == 0,
		SocialStrength:   a.rng.Intn(101),
		AgeDays:          1 + a.rng.Intn(365),
	}

	lower := strings.ToLower(name)
	for _, s := range scamSubstrings {
		if strings.Contains(lower, s) {
			facts.NamePenalty = namePenalty
			break
		}
	}
	return facts
}

// scoreFacts accumule les pénalités graduées par bandes de seuils,
// ajoute un bruit symétrique et borne le résultat à [0, 100]
func (a *Analyzer) scoreFacts(f model.TokenFacts) int {
	// Tirage de base [5, 29] : un jeton sans aucune pénalité reste SAFE
	// même avec le bruit maximal
	score := 5 + a.rng.Intn(25)

	// Liquidité : plus elle est basse, plus la pénalité est lourde
	switch {
	case f.LiquidityUSD < 10_000:
		score += 22
	case f.LiquidityUSD < 50_000:
		score += 14
	case f.LiquidityUSD < 150_000:
		score += 7
	}

	// Concentration des holders
	switch {
	case f.TopHoldersPct > 80:
		score += 20
	case f.TopHoldersPct > 60:
		score += 13
	case f.TopHoldersPct > 40:
		score += 6
	}

	// Contrat non vérifié : pénalité fixe
	if !f.ContractVerified {
		score += 12
	}

	// Présence sociale
	switch {
	case f.SocialStrength < 20:
		score += 10
	case f.SocialStrength < 50:
		score += 5
	}

	// Âge du jeton
	switch {
	case f.AgeDays < 7:
		score += 10
	case f.AgeDays < 30:
		score += 5
	}

	score += f.NamePenalty

	// Bruit symétrique [-5, +5]
	score += a.rng.Intn(11) - 5

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// confidence tire une confiance bornée à [55, 97]. Les verdicts SCAM et SAFE
// annoncent une confiance légèrement plus haute que SUSPICIOUS.
func (a *Analyzer) confidence(category model.RiskCategory) int {
	var c int
	if category == model.CategorySuspicious {
		c = 55 + a.rng.Intn(36)
	} else {
		c = 62 + a.rng.Intn(36)
	}
	if c > 97 {
		c = 97
	}
	return c
}

// pickReasons échantillonne les raisons dans les pools selon la catégorie :
// SCAM 3-4 du pool haut risque, SUSPICIOUS un mix moyen/haut, SAFE 3 du pool
// bas risque. Toujours entre 3 et 5 entrées.
func (a *Analyzer) pickReasons(category model.RiskCategory) []string {
	switch category {
	case model.CategoryScam:
		return a.sample(a.high, 3+a.rng.Intn(2))
	case model.CategorySuspicious:
		reasons := a.sample(a.medium, 2)
		return append(reasons, a.sample(a.high, 1)...)
	default:
		return a.sample(a.low, 3)
	}
}

// sample tire n éléments distincts d'un pool (sans remise)
func (a *Analyzer) sample(pool []string, n int) []string {
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	// Fisher-Yates partiel
	for i := 0; i < n; i++ {
		j := i + a.rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}
