package analyzer

import (
	"math/rand"
	"time"
)

// Source source de hasard injectable. L'algorithme de scoring et
// l'échantillonnage des raisons passent tous par cette interface pour que
// les tests puissent fournir un générateur seedé.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSeededSource retourne une source math/rand seedée explicitement
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// newDefaultSource source de production, seedée sur l'horloge
func newDefaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
