package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gestia-app/paie-backend-go/internal/domain/payroll"
)

// LocalStorage writes rendered artifacts under a directory on disk and
// returns the file path as the storage reference.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) payroll.ArtifactStorage {
	return &LocalStorage{dir: dir}
}

func (s *LocalStorage) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", name, err)
	}
	return path, nil
}
