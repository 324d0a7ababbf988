package services_test

import (
	"context"
	"time"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/services"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() services.ServiceOption {
	return services.WithClock(func() time.Time { return fixedNow })
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

// baseSnapshot holds one member of each kind and default settings.
func baseSnapshot() domain.Snapshot {
	s := domain.NewSnapshot()
	s.Members = []domain.Member{
		{ID: "admin", FullName: "Admin User", Email: "admin@coop.rw", Role: domain.RoleAdmin, Status: domain.MemberActive, JoinedDate: domain.NewDate(2023, 1, 1), HistoricalContribution: dec(0), HistoricalProfit: dec(0)},
		{ID: "alice", FullName: "Alice Member", Email: "alice@coop.rw", Phone: "0780000003", Role: domain.RoleMember, Status: domain.MemberActive, JoinedDate: domain.NewDate(2023, 2, 1), HistoricalContribution: dec(0), HistoricalProfit: dec(0)},
		{ID: "bob", FullName: "Bob Member", Email: "bob@coop.rw", Role: domain.RoleMember, Status: domain.MemberInactive, JoinedDate: domain.NewDate(2023, 2, 15), HistoricalContribution: dec(100000), HistoricalProfit: dec(0)},
	}
	return s
}

func newStore() *memory.StateStore {
	return memory.NewStateStore(baseSnapshot())
}

var (
	adminActor = domain.Actor{MemberID: "admin", Role: domain.RoleAdmin}
	aliceActor = domain.Actor{MemberID: "alice", Role: domain.RoleMember}
	bobActor   = domain.Actor{MemberID: "bob", Role: domain.RoleMember}
)

// MockPublisher is a mock type for the NotificationPublisher port
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// MockSnapshotRepository is a mock type for the SnapshotRepositoryFacade port
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Load(ctx context.Context) (domain.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) Save(ctx context.Context, s domain.Snapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockInsightGenerator is a mock type for the InsightGenerator port
type MockInsightGenerator struct {
	mock.Mock
}

func (m *MockInsightGenerator) Generate(ctx context.Context, summary domain.FinancialSummary) (string, error) {
	args := m.Called(ctx, summary)
	return args.String(0), args.Error(1)
}
