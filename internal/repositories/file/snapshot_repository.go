// Package file stores the ledger snapshot as a JSON document on local disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
)

// SnapshotRepository reads and writes a single JSON snapshot file.
type SnapshotRepository struct {
	path string
	mu   sync.Mutex
}

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates the parent directory of path if needed.
func NewSnapshotRepository(path string) (*SnapshotRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &SnapshotRepository{path: path}, nil
}

// Load returns an empty snapshot when the file does not exist yet.
func (r *SnapshotRepository) Load(ctx context.Context) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return domain.Snapshot{}, apperrors.NewAppError(500, "failed to read snapshot file", err)
	}

	var s domain.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.Snapshot{}, apperrors.NewAppError(500, "failed to decode snapshot file", err)
	}
	s.Normalize()
	return s, nil
}

// Save writes to a temporary file and renames it over the previous snapshot,
// so readers never observe a half-written document.
func (r *SnapshotRepository) Save(ctx context.Context, s domain.Snapshot) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode snapshot", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".snapshot-*.json")
	if err != nil {
		return apperrors.NewAppError(500, "failed to create temporary snapshot file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperrors.NewAppError(500, "failed to write snapshot file", err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close snapshot file", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return apperrors.NewAppError(500, "failed to replace snapshot file", err)
	}

	slog.DebugContext(ctx, "Snapshot written", "path", r.path, "bytes", len(data))
	return nil
}
