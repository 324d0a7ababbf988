package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
)

// snapshotRowID is the primary key of the single current-snapshot row.
const snapshotRowID = 1

// PgxSnapshotRepository keeps the current snapshot as a jsonb document and
// logs every save in coop_snapshot_saves.
type PgxSnapshotRepository struct {
	BaseRepository
}

// newPgxSnapshotRepository creates a new repository for the ledger snapshot.
func newPgxSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

// Load returns the stored snapshot, or an empty one when nothing has been saved.
func (r *PgxSnapshotRepository) Load(ctx context.Context) (domain.Snapshot, error) {
	query := `SELECT document FROM coop_snapshots WHERE id = $1;`

	var document []byte
	err := r.Pool.QueryRow(ctx, query, snapshotRowID).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return domain.Snapshot{}, apperrors.NewAppError(500, "failed to load snapshot", err)
	}

	var s domain.Snapshot
	if err := json.Unmarshal(document, &s); err != nil {
		return domain.Snapshot{}, apperrors.NewAppError(500, "failed to decode stored snapshot", err)
	}
	s.Normalize()
	return s, nil
}

// Save upserts the snapshot and records the save in one transaction.
func (r *PgxSnapshotRepository) Save(ctx context.Context, s domain.Snapshot) (err error) {
	document, err := json.Marshal(s)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode snapshot", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := r.Rollback(ctx, tx); rbErr != nil {
				slog.ErrorContext(ctx, "Snapshot rollback failed", "error", rbErr)
			}
		}
	}()

	upsert := `
		INSERT INTO coop_snapshots (id, document, saved_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET
			document = EXCLUDED.document,
			saved_at = EXCLUDED.saved_at;
	`
	if _, err = tx.Exec(ctx, upsert, snapshotRowID, document); err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	audit := `
		INSERT INTO coop_snapshot_saves (saved_at, member_count, loan_count, contribution_count, document_bytes)
		VALUES (NOW(), $1, $2, $3, $4);
	`
	if _, err = tx.Exec(ctx, audit, len(s.Members), len(s.Loans), len(s.Contributions), len(document)); err != nil {
		return fmt.Errorf("failed to record snapshot save: %w", err)
	}

	return r.Commit(ctx, tx)
}
