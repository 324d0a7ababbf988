package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
)

// PersistenceWorker saves the ledger state after it has been quiet for a debounce delay.
// Saving is best-effort: failures are logged and the in-memory state is kept as is.
type PersistenceWorker struct {
	state    portsrepo.StateReader
	repo     portsrepo.SnapshotWriter
	debounce time.Duration
	timeout  time.Duration
	signal   chan struct{}
}

func NewPersistenceWorker(state portsrepo.StateReader, repo portsrepo.SnapshotWriter, debounce, timeout time.Duration) *PersistenceWorker {
	return &PersistenceWorker{
		state:    state,
		repo:     repo,
		debounce: debounce,
		timeout:  timeout,
		signal:   make(chan struct{}, 1),
	}
}

// Trigger marks the state as changed. It never blocks; bursts collapse into one save.
func (w *PersistenceWorker) Trigger() {
	select {
	case w.signal <- struct{}{}:
	default:
	}
}

// Run waits for change signals until ctx is cancelled. Pending changes are flushed
// once more on the way out using a fresh context bounded by the save timeout.
func (w *PersistenceWorker) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "Persistence worker started", "debounce", w.debounce, "timeout", w.timeout)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			// drain a signal that raced with cancellation
			select {
			case <-w.signal:
				pending = true
			default:
			}
			if pending {
				slog.InfoContext(ctx, "Flushing pending changes before shutdown")
				if err := w.Flush(context.WithoutCancel(ctx)); err != nil {
					slog.ErrorContext(ctx, "Final flush failed", "error", err)
				}
			}
			slog.InfoContext(ctx, "Persistence worker stopped")
			return nil
		case <-w.signal:
			pending = true
			timer.Reset(w.debounce)
		case <-timer.C:
			pending = false
			if err := w.Flush(ctx); err != nil {
				slog.ErrorContext(ctx, "Failed to persist snapshot", "error", err)
			}
		}
	}
}

// Flush saves the current state right away.
func (w *PersistenceWorker) Flush(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	snap := w.state.Snapshot(ctx)
	if err := w.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	slog.InfoContext(ctx, "Snapshot persisted",
		"members", len(snap.Members),
		"loans", len(snap.Loans),
		"duration", time.Since(start))
	return nil
}
