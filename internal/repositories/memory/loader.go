package memory

import (
	"context"
	"log/slog"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
)

// LoadResult is the start-up state and whether it came from a readable store.
type LoadResult struct {
	Snapshot domain.Snapshot
	// Persistable is false when the stored document could not be read.
	// Background saves must then stay off so the document is not overwritten.
	Persistable bool
	Seeded      bool
}

// LoadInitialSnapshot reads the persisted snapshot. A nil reader means
// persistence is disabled. Read failures are logged and the ledger starts empty.
func LoadInitialSnapshot(ctx context.Context, reader portsrepo.SnapshotReader, seedDemo bool, logger *slog.Logger) LoadResult {
	result := LoadResult{Snapshot: domain.NewSnapshot(), Persistable: true}
	if reader != nil {
		snap, err := reader.Load(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to load stored snapshot, starting with an empty ledger and background saves disabled",
				slog.String("error", err.Error()))
			result.Persistable = false
			return result
		}
		result.Snapshot = snap
	}
	if result.Snapshot.IsEmpty() && seedDemo {
		logger.InfoContext(ctx, "No stored data found, seeding demo data")
		result.Snapshot = DemoSnapshot()
		result.Seeded = true
	}
	return result
}
