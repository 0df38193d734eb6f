package model

// RiskCategory catégorie de risque dérivée du score
type RiskCategory string

const (
	CategorySafe       RiskCategory = "SAFE"
	CategorySuspicious RiskCategory = "SUSPICIOUS"
	CategoryScam       RiskCategory = "SCAM"
)

// Seuils de catégorisation (fixes, jamais configurables)
const (
	ScamThreshold       = 70
	SuspiciousThreshold = 35
)

// CategoryFromScore dérive la catégorie depuis le score de risque.
// La catégorie est une fonction pure du score, aucun autre champ n'intervient.
func CategoryFromScore(score int) RiskCategory {
	switch {
	case score >= ScamThreshold:
		return CategoryScam
	case score >= SuspiciousThreshold:
		return CategorySuspicious
	default:
		return CategorySafe
	}
}

// TokenFacts faits synthétiques générés pour un seul calcul de score.
// Jamais persisté, n'existe que le temps d'une analyse.
type TokenFacts struct {
	LiquidityUSD     float64
	TopHoldersPct    float64
	ContractVerified bool
	SocialStrength   int
	AgeDays          int
	NamePenalty      int
}

// AnalysisResult verdict synthétique retourné par l'analyseur.
// Immuable une fois retourné.
type AnalysisResult struct {
	RiskScore  int          `json:"riskScore"`
	Category   RiskCategory `json:"category"`
	Confidence int          `json:"confidence"`
	Reasons    []string     `json:"reasons"`
	TokenName  string       `json:"tokenName"`
	Symbol     string       `json:"symbol"`
}

// SpawnedToken jeton éphémère généré pour le mode AR (avant capture)
type SpawnedToken struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Hue    int    `json:"hue"`
}
