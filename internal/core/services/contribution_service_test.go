package services_test

import (
	"context"
	"testing"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/ledger"
	"github.com/sangwaemm/The-Partners-App/internal/core/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordContribution_Defaults(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	svc := services.NewContributionService(store, fixedClock())

	c, err := svc.RecordContribution(ctx, dto.RecordContributionRequest{
		MemberID:    "alice",
		PeriodStart: domain.NewDate(2024, 1, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, "8000", c.Amount.String())
	assert.Equal(t, domain.ContributionPaid, c.Status)
	assert.Equal(t, domain.DateOf(fixedNow), c.DatePaid)
	assert.Equal(t, "2024-01-29", c.PeriodEnd.String())

	snap := store.Snapshot(ctx)
	assert.Equal(t, "Contribution recorded for: Alice Member", snap.Notifications[0].Message)
}

func TestRecordContribution_RaisesShares(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	svc := services.NewContributionService(store, fixedClock())
	alice, _ := domain.FindMember(store.Snapshot(ctx).Members, "alice")

	for i := 0; i < 12; i++ {
		_, err := svc.RecordContribution(ctx, dto.RecordContributionRequest{MemberID: "alice", Amount: decPtr(9000)})
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), ledger.ShareCount(alice, store.Snapshot(ctx).Contributions))
}

func TestRecordContribution_Rejections(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	svc := services.NewContributionService(store, fixedClock())

	_, err := svc.RecordContribution(ctx, dto.RecordContributionRequest{MemberID: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.RecordContribution(ctx, dto.RecordContributionRequest{MemberID: "alice", Amount: decPtr(0)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.RecordContribution(ctx, dto.RecordContributionRequest{MemberID: "alice", Status: "late"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.RecordContribution(ctx, dto.RecordContributionRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.Empty(t, store.Snapshot(ctx).Contributions)
}

func TestListContributions_FiltersForMembers(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	svc := services.NewContributionService(store, fixedClock())
	_, err := svc.RecordContribution(ctx, dto.RecordContributionRequest{MemberID: "alice"})
	require.NoError(t, err)
	_, err = svc.RecordContribution(ctx, dto.RecordContributionRequest{MemberID: "bob"})
	require.NoError(t, err)

	all, err := svc.ListContributions(ctx, adminActor)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListContributions(ctx, aliceActor)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "alice", own[0].MemberID)
}

func TestDeleteContribution(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	svc := services.NewContributionService(store, fixedClock())
	c, err := svc.RecordContribution(ctx, dto.RecordContributionRequest{MemberID: "alice"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContribution(ctx, c.ID))

	snap := store.Snapshot(ctx)
	assert.Empty(t, snap.Contributions)
	assert.Equal(t, "Contribution record deleted", snap.Notifications[0].Message)
	assert.ErrorIs(t, svc.DeleteContribution(ctx, c.ID), apperrors.ErrNotFound)
}
