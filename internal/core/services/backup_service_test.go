package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportSnapshot_RoundTrip(t *testing.T) {
	ctx := context.Background()
	source := memory.NewStateStore(memory.DemoSnapshot())
	exporter := services.NewBackupService(source, nil, fixedClock())
	exported, err := exporter.ExportSnapshot(ctx)
	require.NoError(t, err)

	target := newStore()
	importer := services.NewBackupService(target, nil, fixedClock())
	restored, err := importer.ImportSnapshot(ctx, dto.ImportFromSnapshot(*exported))
	require.NoError(t, err)

	assert.Equal(t, exported.Members, restored.Members)
	assert.Equal(t, exported.Contributions, restored.Contributions)
	assert.Equal(t, exported.Loans, restored.Loans)
	assert.Equal(t, exported.Investments, restored.Investments)
	assert.Equal(t, exported.Activities, restored.Activities)
	assert.Equal(t, exported.Settings, restored.Settings)
	assert.Equal(t, exported.Notifications, restored.Notifications[1:])
	assert.Equal(t, "Database restored from backup file", restored.Notifications[0].Message)
	assert.Equal(t, *restored, target.Snapshot(ctx))
}

func TestImportSnapshot_KeepsMissingCollections(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	svc := services.NewBackupService(store, nil, fixedClock())
	loans := []domain.Loan{{
		ID: "l1", BorrowerType: domain.BorrowerExternal, BorrowerName: "X", Status: domain.LoanActive,
		Principal: dec(1000), InterestRate: decimal.RequireFromString("0.1"), TotalInterest: dec(100),
		TotalDue: dec(1100), AmountPaid: dec(0), RemainingAmount: dec(1100),
	}}

	restored, err := svc.ImportSnapshot(ctx, dto.ImportSnapshotRequest{Loans: &loans})

	require.NoError(t, err)
	assert.Len(t, restored.Members, 3)
	require.Len(t, restored.Loans, 1)
	assert.NotNil(t, restored.Loans[0].MonthsPaidHistory)

	loans[0].BorrowerName = "mutated after import"
	assert.Equal(t, "X", store.Snapshot(ctx).Loans[0].BorrowerName)
}

func TestSaveBackup(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	repo := new(MockSnapshotRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("domain.Snapshot")).Return(nil).Once()
	svc := services.NewBackupService(store, repo, fixedClock())

	require.NoError(t, svc.SaveBackup(ctx))
	repo.AssertCalled(t, "Save", mock.Anything, store.Snapshot(ctx))

	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	assert.ErrorIs(t, svc.SaveBackup(ctx), apperrors.ErrPersistence)
}

func TestLoadBackup(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSnapshotRepository)
	persisted := memory.DemoSnapshot()
	repo.On("Load", mock.Anything).Return(persisted, nil)
	svc := services.NewBackupService(newStore(), repo, fixedClock())

	got, err := svc.LoadBackup(ctx)

	require.NoError(t, err)
	assert.Equal(t, persisted, *got)
}

func TestBackup_NoRepository(t *testing.T) {
	svc := services.NewBackupService(newStore(), nil, fixedClock())

	assert.ErrorIs(t, svc.SaveBackup(context.Background()), apperrors.ErrPersistence)
	_, err := svc.LoadBackup(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestImportSnapshot_RejectsInconsistentDocuments(t *testing.T) {
	validLoan := func() domain.Loan {
		return domain.Loan{
			ID: "l1", BorrowerType: domain.BorrowerExternal, BorrowerName: "X", Status: domain.LoanActive,
			Principal: dec(100000), InterestRate: decimal.RequireFromString("0.1"), TotalInterest: dec(10000),
			TotalDue: dec(110000), AmountPaid: dec(50000), InterestPaid: dec(5000), RemainingAmount: dec(60000),
		}
	}
	validInvestment := func() domain.Investment {
		return domain.Investment{
			ID: "i1", Name: "Farm", TotalCapital: dec(500000), TotalExpenses: dec(1000), TotalProfits: dec(0),
			ExpenseHistory: []domain.InvestmentEntry{{Amount: dec(1000), Description: "seeds"}},
		}
	}

	tests := []struct {
		name  string
		req   func() dto.ImportSnapshotRequest
		field string
	}{
		{
			name: "unknown member role",
			req: func() dto.ImportSnapshotRequest {
				members := baseSnapshot().Members
				members[0].Role = "OWNER"
				return dto.ImportSnapshotRequest{Members: &members}
			},
			field: "members[0].role",
		},
		{
			name: "negative historical contribution",
			req: func() dto.ImportSnapshotRequest {
				members := baseSnapshot().Members
				members[1].HistoricalContribution = dec(-1)
				return dto.ImportSnapshotRequest{Members: &members}
			},
			field: "members[1].historicalContribution",
		},
		{
			name: "unknown contribution status",
			req: func() dto.ImportSnapshotRequest {
				contributions := []domain.Contribution{{ID: "c1", MemberID: "alice", Amount: dec(8000), Status: "late"}}
				return dto.ImportSnapshotRequest{Contributions: &contributions}
			},
			field: "contributions[0].status",
		},
		{
			name: "unknown borrower type",
			req: func() dto.ImportSnapshotRequest {
				l := validLoan()
				l.BorrowerType = "BOGUS"
				loans := []domain.Loan{l}
				return dto.ImportSnapshotRequest{Loans: &loans}
			},
			field: "loans[0].borrowerType",
		},
		{
			name: "unknown loan status",
			req: func() dto.ImportSnapshotRequest {
				l := validLoan()
				l.Status = "WHATEVER"
				loans := []domain.Loan{l}
				return dto.ImportSnapshotRequest{Loans: &loans}
			},
			field: "loans[0].status",
		},
		{
			name: "negative remaining amount",
			req: func() dto.ImportSnapshotRequest {
				l := validLoan()
				l.RemainingAmount = dec(-5000)
				loans := []domain.Loan{l}
				return dto.ImportSnapshotRequest{Loans: &loans}
			},
			field: "loans[0].remainingAmount",
		},
		{
			name: "remaining amount out of line with payments",
			req: func() dto.ImportSnapshotRequest {
				l := validLoan()
				l.RemainingAmount = dec(10)
				loans := []domain.Loan{l}
				return dto.ImportSnapshotRequest{Loans: &loans}
			},
			field: "does not match totalDue - amountPaid",
		},
		{
			name: "expense total out of line with history",
			req: func() dto.ImportSnapshotRequest {
				inv := validInvestment()
				inv.TotalExpenses = dec(999)
				investments := []domain.Investment{inv}
				return dto.ImportSnapshotRequest{Investments: &investments}
			},
			field: "investments[0].totalExpenses",
		},
		{
			name: "profit total out of line with history",
			req: func() dto.ImportSnapshotRequest {
				inv := validInvestment()
				inv.TotalProfits = dec(5)
				investments := []domain.Investment{inv}
				return dto.ImportSnapshotRequest{Investments: &investments}
			},
			field: "investments[0].totalProfits",
		},
		{
			name: "unknown activity type",
			req: func() dto.ImportSnapshotRequest {
				activities := []domain.Activity{{ID: "a1", Title: "Party", ActivityType: "FUN", AmountSpent: dec(0), AmountEarned: dec(0)}}
				return dto.ImportSnapshotRequest{Activities: &activities}
			},
			field: "activities[0].activityType",
		},
		{
			name: "negative activity spend",
			req: func() dto.ImportSnapshotRequest {
				activities := []domain.Activity{{ID: "a1", Title: "Party", ActivityType: domain.ActivityGeneral, AmountSpent: dec(-1), AmountEarned: dec(0)}}
				return dto.ImportSnapshotRequest{Activities: &activities}
			},
			field: "activities[0].amountSpent",
		},
		{
			name: "unknown notification type",
			req: func() dto.ImportSnapshotRequest {
				notifications := []domain.Notification{{ID: "n1", Message: "hi", Type: "alarm"}}
				return dto.ImportSnapshotRequest{Notifications: &notifications}
			},
			field: "notifications[0].type",
		},
		{
			name: "negative share price",
			req: func() dto.ImportSnapshotRequest {
				return dto.ImportSnapshotRequest{Settings: &domain.Settings{LoanInterestRate: dec(10), SharePrice: dec(-1)}}
			},
			field: "share price",
		},
		{
			name: "negative interest rate setting",
			req: func() dto.ImportSnapshotRequest {
				return dto.ImportSnapshotRequest{Settings: &domain.Settings{LoanInterestRate: dec(-2), SharePrice: dec(100000)}}
			},
			field: "settings.loanInterestRate",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore()
			before := store.Snapshot(ctx)
			svc := services.NewBackupService(store, nil, fixedClock())

			restored, err := svc.ImportSnapshot(ctx, tc.req())

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tc.field)
			assert.Nil(t, restored)
			assert.Equal(t, before, store.Snapshot(ctx))
		})
	}
}

func TestImportSnapshot_ToleratesUnknownMemberReferences(t *testing.T) {
	ctx := context.Background()
	svc := services.NewBackupService(newStore(), nil, fixedClock())
	contributions := []domain.Contribution{{ID: "c1", MemberID: "gone", Amount: dec(8000), Status: domain.ContributionPaid}}

	restored, err := svc.ImportSnapshot(ctx, dto.ImportSnapshotRequest{Contributions: &contributions})

	require.NoError(t, err)
	assert.Equal(t, "gone", restored.Contributions[0].MemberID)
}
