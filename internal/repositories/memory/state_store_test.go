package memory_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/ledger"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_UpdateCommitsAndNotifies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStateStore(domain.NewSnapshot())
	var calls atomic.Int32
	store.Subscribe(func() { calls.Add(1) })

	err := store.Update(ctx, func(s *domain.Snapshot) error {
		s.Members = append(s.Members, domain.Member{ID: "m1", FullName: "Alice"})
		return nil
	})

	require.NoError(t, err)
	assert.Len(t, store.Snapshot(ctx).Members, 1)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, uint64(1), store.Version())
}

func TestStateStore_FailedUpdateLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStateStore(memory.DemoSnapshot())
	var calls atomic.Int32
	store.Subscribe(func() { calls.Add(1) })
	before := store.Snapshot(ctx)
	boom := errors.New("boom")

	err := store.Update(ctx, func(s *domain.Snapshot) error {
		s.Members = s.Members[:0]
		s.Loans[0].AmountPaid = decimal.NewFromInt(1)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, before, store.Snapshot(ctx))
	assert.Equal(t, int32(0), calls.Load())
}

func TestStateStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStateStore(memory.DemoSnapshot())

	snap := store.Snapshot(ctx)
	snap.Loans[0].MonthsPaidHistory[0].Months = 42
	snap.Members[0].FullName = "mutated"

	fresh := store.Snapshot(ctx)
	assert.Equal(t, 1, fresh.Loans[0].MonthsPaidHistory[0].Months)
	assert.Equal(t, "Admin User", fresh.Members[0].FullName)
}

func TestStateStore_ConcurrentWritersAreSerialized(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStateStore(domain.NewSnapshot())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, func(s *domain.Snapshot) error {
				s.Contributions = append(s.Contributions, domain.Contribution{MemberID: "m", Amount: decimal.NewFromInt(1000)})
				return nil
			})
			_ = ledger.ComputeDashboardTotals(store.Snapshot(ctx))
		}()
	}
	wg.Wait()

	assert.Len(t, store.Snapshot(ctx).Contributions, 50)
	assert.Equal(t, uint64(50), store.Version())
}

func TestDemoSnapshot_IsConsistent(t *testing.T) {
	s := memory.DemoSnapshot()

	for _, inv := range s.Investments {
		assert.True(t, inv.TotalExpenses.Equal(ledger.SumEntries(inv.ExpenseHistory)), inv.Name)
		assert.True(t, inv.TotalProfits.Equal(ledger.SumEntries(inv.ProfitHistory)), inv.Name)
	}
	for _, l := range s.Loans {
		assert.True(t, l.AmountPaid.Add(l.RemainingAmount).Equal(l.TotalDue), l.ID)
	}
}

func TestStateStore_PanickingUpdateReleasesLock(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStateStore(domain.NewSnapshot())

	assert.Panics(t, func() {
		_ = store.Update(ctx, func(s *domain.Snapshot) error {
			s.Members = append(s.Members, domain.Member{ID: "ghost"})
			panic("boom")
		})
	})

	assert.Empty(t, store.Snapshot(ctx).Members)
	err := store.Update(ctx, func(s *domain.Snapshot) error {
		s.Members = append(s.Members, domain.Member{ID: "m1", FullName: "Alice"})
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, store.Snapshot(ctx).Members, 1)
	assert.Equal(t, uint64(1), store.Version())
}
