package services_test

import (
	"context"
	"testing"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMember(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	svc := services.NewMemberService(store, fixedClock())

	m, err := svc.AddMember(ctx, dto.CreateMemberRequest{FullName: "Carol New", Email: "carol@coop.rw", Role: domain.RoleMember})

	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, domain.MemberActive, m.Status)
	assert.Equal(t, domain.DateOf(fixedNow), m.JoinedDate)
	assert.True(t, m.HistoricalContribution.IsZero())

	snap := store.Snapshot(ctx)
	assert.Len(t, snap.Members, 4)
	assert.Equal(t, "New member added: Carol New", snap.Notifications[0].Message)
}

func TestAddMember_Rejections(t *testing.T) {
	ctx := context.Background()
	svc := services.NewMemberService(newStore(), fixedClock())

	_, err := svc.AddMember(ctx, dto.CreateMemberRequest{FullName: "Dup", Email: "ALICE@coop.rw", Role: domain.RoleMember})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = svc.AddMember(ctx, dto.CreateMemberRequest{FullName: "Bad role", Role: "TREASURER"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.AddMember(ctx, dto.CreateMemberRequest{FullName: "Neg", Role: domain.RoleMember, HistoricalProfit: decPtr(-1)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateMember(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	svc := services.NewMemberService(store, fixedClock())
	inactive := domain.MemberInactive

	m, err := svc.UpdateMember(ctx, "alice", dto.UpdateMemberRequest{Status: &inactive, HistoricalContribution: decPtr(250000)})

	require.NoError(t, err)
	assert.Equal(t, domain.MemberInactive, m.Status)
	assert.Equal(t, "Alice Member", m.FullName)
	assert.Equal(t, "Member updated: Alice Member", store.Snapshot(ctx).Notifications[0].Message)

	_, err = svc.UpdateMember(ctx, "ghost", dto.UpdateMemberRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.UpdateMember(ctx, "alice", dto.UpdateMemberRequest{Email: strPtr("bob@coop.rw")})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestComputeMemberPortfolio_Access(t *testing.T) {
	ctx := context.Background()
	svc := services.NewMemberService(newStore(), fixedClock())

	p, err := svc.ComputeMemberPortfolio(ctx, bobActor, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.MyShares)

	_, err = svc.ComputeMemberPortfolio(ctx, aliceActor, "bob")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.ComputeMemberPortfolio(ctx, adminActor, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemberShares(t *testing.T) {
	svc := services.NewMemberService(newStore(), fixedClock())

	shares, err := svc.MemberShares(context.Background())

	require.NoError(t, err)
	assert.Len(t, shares, 3)
}
