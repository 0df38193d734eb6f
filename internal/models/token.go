package model

// CapturedToken jeton capturé en mode AR, entrée permanente de l'inventaire.
// Jamais modifié après création. Les timestamps sont en millisecondes epoch
// pour rester compatibles avec le client mobile.
type CapturedToken struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Symbol     string       `json:"symbol"`
	RiskScore  int          `json:"riskScore"`
	Category   RiskCategory `json:"category"`
	CapturedAt int64        `json:"capturedAt"`
	XPEarned   int          `json:"xpEarned"`
	ImageHue   int          `json:"imageHue"`
}

// ScanResult résultat d'un scan enregistré dans l'historique.
// Jamais modifié après création.
type ScanResult struct {
	TokenName  string       `json:"tokenName"`
	RiskScore  int          `json:"riskScore"`
	Category   RiskCategory `json:"category"`
	Confidence int          `json:"confidence"`
	Reasons    []string     `json:"reasons"`
	ScannedAt  int64        `json:"scannedAt"`
}
