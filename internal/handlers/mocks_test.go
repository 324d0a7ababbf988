package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// --- Mock MemberService ---
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberService) MemberShares(ctx context.Context) ([]domain.MemberShareSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberShareSummary), args.Error(1)
}
func (m *MockMemberService) ComputeMemberPortfolio(ctx context.Context, actor domain.Actor, memberID string) (*domain.MemberPortfolio, error) {
	args := m.Called(ctx, actor, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberPortfolio), args.Error(1)
}
func (m *MockMemberService) AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	args := m.Called(ctx, memberID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

var _ portssvc.MemberSvcFacade = (*MockMemberService)(nil)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) GetLoan(ctx context.Context, actor domain.Actor, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, actor, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) ListLoans(ctx context.Context, actor domain.Actor) ([]domain.Loan, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) LoanAccrual(ctx context.Context, actor domain.Actor, loanID string, ref domain.Date) (*domain.LoanAccrual, error) {
	args := m.Called(ctx, actor, loanID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanAccrual), args.Error(1)
}
func (m *MockLoanService) IssueLoan(ctx context.Context, req dto.IssueLoanRequest) (*domain.Loan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) RecordLoanPayment(ctx context.Context, loanID string, req dto.RecordLoanPaymentRequest) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) DeleteLoan(ctx context.Context, loanID string) error {
	args := m.Called(ctx, loanID)
	return args.Error(0)
}

var _ portssvc.LoanSvcFacade = (*MockLoanService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) ComputeDashboardTotals(ctx context.Context) (*domain.DashboardTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardTotals), args.Error(1)
}
func (m *MockReportingService) ListAvailableQuarters(ctx context.Context) ([]domain.Quarter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quarter), args.Error(1)
}
func (m *MockReportingService) GenerateQuarterlyReport(ctx context.Context, quarterLabel string) (*domain.QuarterlyReport, error) {
	args := m.Called(ctx, quarterLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuarterlyReport), args.Error(1)
}
func (m *MockReportingService) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExportRow), args.Error(1)
}
func (m *MockReportingService) GenerateInsight(ctx context.Context) *dto.InsightResponse {
	args := m.Called(ctx)
	return args.Get(0).(*dto.InsightResponse)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock BackupService ---
type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) ExportSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}
func (m *MockBackupService) ImportSnapshot(ctx context.Context, req dto.ImportSnapshotRequest) (*domain.Snapshot, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}
func (m *MockBackupService) SaveBackup(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBackupService) LoadBackup(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

var _ portssvc.BackupSvcFacade = (*MockBackupService)(nil)
