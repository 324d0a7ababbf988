// Package sqlite stores the ledger snapshot in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"

	_ "modernc.org/sqlite"
)

const snapshotRowID = 1

// SnapshotRepository keeps the current snapshot document in coop_snapshots.
type SnapshotRepository struct {
	db *sql.DB
}

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

// NewSnapshotRepository opens (or creates) the database at dbPath and migrates it.
func NewSnapshotRepository(dbPath string) (*SnapshotRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY between our own goroutines.
	db.SetMaxOpenConns(1)
	return &SnapshotRepository{db: db}, nil
}

// Close releases the database handle.
func (r *SnapshotRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load returns the stored snapshot, or an empty one when nothing has been saved.
func (r *SnapshotRepository) Load(ctx context.Context) (domain.Snapshot, error) {
	var document string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM coop_snapshots WHERE id = ?`, snapshotRowID).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return domain.Snapshot{}, apperrors.NewAppError(500, "failed to load snapshot", err)
	}

	var s domain.Snapshot
	if err := json.Unmarshal([]byte(document), &s); err != nil {
		return domain.Snapshot{}, apperrors.NewAppError(500, "failed to decode stored snapshot", err)
	}
	s.Normalize()
	return s, nil
}

// Save upserts the snapshot and records the save.
func (r *SnapshotRepository) Save(ctx context.Context, s domain.Snapshot) error {
	document, err := json.Marshal(s)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode snapshot", err)
	}
	savedAt := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO coop_snapshots (id, document, saved_at) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET document = excluded.document, saved_at = excluded.saved_at`,
		snapshotRowID, string(document), savedAt)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO coop_snapshot_saves (saved_at, member_count, loan_count, contribution_count, document_bytes)
		VALUES (?, ?, ?, ?, ?)`,
		savedAt, len(s.Members), len(s.Loans), len(s.Contributions), len(document))
	if err != nil {
		return fmt.Errorf("record snapshot save: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}

	slog.DebugContext(ctx, "Snapshot saved to SQLite", "bytes", len(document))
	return nil
}

// SaveCount returns how many saves have been recorded.
func (r *SnapshotRepository) SaveCount(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM coop_snapshot_saves`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count snapshot saves: %w", err)
	}
	return n, nil
}
