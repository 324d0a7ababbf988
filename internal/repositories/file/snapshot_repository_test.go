package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/file"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository_MissingFileIsEmpty(t *testing.T) {
	repo, err := file.NewSnapshotRepository(filepath.Join(t.TempDir(), "nested", "coop.json"))
	require.NoError(t, err)

	s, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, domain.DefaultSettings(), s.Settings)
}

func TestSnapshotRepository_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "coop.json")
	repo, err := file.NewSnapshotRepository(path)
	require.NoError(t, err)
	want := memory.DemoSnapshot()

	require.NoError(t, repo.Save(ctx, want))
	got, err := repo.Load(ctx)

	require.NoError(t, err)
	assert.Len(t, got.Members, len(want.Members))
	require.Len(t, got.Loans, 1)
	assert.True(t, want.Loans[0].TotalDue.Equal(got.Loans[0].TotalDue))
	assert.Equal(t, want.Loans[0].DateIssued, got.Loans[0].DateIssued)
	assert.True(t, want.Investments[0].ExpenseHistory[1].Amount.Equal(got.Investments[0].ExpenseHistory[1].Amount))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestSnapshotRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coop.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	repo, err := file.NewSnapshotRepository(path)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())

	assert.Error(t, err)
}
