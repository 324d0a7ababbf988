package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
)

// NewSnapshotRepository returns the Postgres-backed snapshot repository.
func NewSnapshotRepository(dbPool *pgxpool.Pool) portsrepo.SnapshotRepositoryFacade {
	return newPgxSnapshotRepository(dbPool)
}
