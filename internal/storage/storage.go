// Package storage fournit le port de persistance clé-valeur du store de
// progression. Le store sérialise son état en un seul blob JSON sous une clé
// fixe ; la mécanique de stockage (fichier ou Postgres) est interchangeable.
package storage

import "context"

// StateKey clé fixe sous laquelle le blob de progression est persisté
const StateKey = "scamhunter-store"

// Store port de persistance. Save écrase le blob sous la clé ; Load retourne
// (blob, true) si la clé existe, (nil, false) sinon.
type Store interface {
	Save(ctx context.Context, key string, blob []byte) error
	Load(ctx context.Context, key string) ([]byte, bool, error)
}
