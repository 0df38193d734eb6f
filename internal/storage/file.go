package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persiste chaque blob dans un fichier JSON du répertoire de
// données. Backend par défaut quand aucune base n'est configurée.
type FileStore struct {
	dir string
}

// NewFileStore crée le répertoire de données si nécessaire
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("could not create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save écrit le blob de façon atomique (fichier temporaire puis rename)
func (s *FileStore) Save(_ context.Context, key string, blob []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, blob, 0600); err != nil {
		return fmt.Errorf("could not write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("could not rename %s: %w", tmp, err)
	}
	return nil
}

// Load lit le blob ; une clé absente n'est pas une erreur
func (s *FileStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	blob, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %s: %w", s.path(key), err)
	}
	return blob, true, nil
}
