package repositories

// RepositoryProvider holds the repositories needed by services.
type RepositoryProvider struct {
	State    StateStore
	Snapshot SnapshotRepositoryFacade
}
