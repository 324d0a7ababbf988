package services_test

import (
	"context"
	"testing"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/core/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/repositories/memory"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LoanServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memory.StateStore
	publisher *MockPublisher
	svc       portssvc.LoanSvcFacade
	settings  portssvc.SettingsSvcFacade
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newStore()
	suite.publisher = new(MockPublisher)
	suite.publisher.On("PublishNotification", mock.Anything, mock.AnythingOfType("domain.Notification")).Return(nil).Maybe()
	suite.svc = services.NewLoanService(suite.store, fixedClock(), services.WithNotificationPublisher(suite.publisher))
	suite.settings = services.NewSettingsService(suite.store, fixedClock())
}

func (suite *LoanServiceTestSuite) issueMemberLoan(principal int64) *domain.Loan {
	loan, err := suite.svc.IssueLoan(suite.ctx, dto.IssueLoanRequest{
		BorrowerType: domain.BorrowerMember,
		MemberID:     "alice",
		Principal:    dec(principal),
		DateIssued:   domain.NewDate(2024, 1, 10),
		DueDate:      domain.NewDate(2024, 4, 10),
	})
	suite.Require().NoError(err)
	return loan
}

func (suite *LoanServiceTestSuite) TestIssueLoan_PricesWithCurrentSettings() {
	loan := suite.issueMemberLoan(100000)

	suite.Equal("0.1", loan.InterestRate.String())
	suite.Equal("10000", loan.TotalInterest.String())
	suite.Equal("110000", loan.TotalDue.String())
	suite.Equal("110000", loan.RemainingAmount.String())
	suite.Equal(domain.LoanActive, loan.Status)
	suite.Equal("Alice Member", loan.BorrowerName)
	suite.Equal("0780000003", loan.BorrowerPhone)

	snap := suite.store.Snapshot(suite.ctx)
	suite.Len(snap.Loans, 1)
	suite.Equal("New loan issued to: Alice Member", snap.Notifications[0].Message)
	suite.Equal(domain.RoleAdmin, snap.Notifications[0].TargetRole)
	suite.publisher.AssertCalled(suite.T(), "PublishNotification", mock.Anything, snap.Notifications[0])
}

func (suite *LoanServiceTestSuite) TestIssueLoan_IsNotRepricedWhenSettingsChange() {
	loan := suite.issueMemberLoan(100000)

	_, err := suite.settings.UpdateSettings(suite.ctx, dto.UpdateSettingsRequest{LoanInterestRate: dec(20), SharePrice: dec(100000)})
	suite.Require().NoError(err)

	stored, err := suite.svc.GetLoan(suite.ctx, adminActor, loan.ID)
	suite.Require().NoError(err)
	suite.Equal("110000", stored.TotalDue.String())

	next := suite.issueMemberLoan(100000)
	suite.Equal("120000", next.TotalDue.String())
}

func (suite *LoanServiceTestSuite) TestIssueLoan_Validation() {
	tests := []struct {
		name string
		req  dto.IssueLoanRequest
	}{
		{"zero principal", dto.IssueLoanRequest{BorrowerType: domain.BorrowerExternal, BorrowerName: "X", Principal: dec(0), DueDate: domain.NewDate(2024, 6, 1)}},
		{"negative principal", dto.IssueLoanRequest{BorrowerType: domain.BorrowerExternal, BorrowerName: "X", Principal: dec(-5), DueDate: domain.NewDate(2024, 6, 1)}},
		{"external without name", dto.IssueLoanRequest{BorrowerType: domain.BorrowerExternal, Principal: dec(1000), DueDate: domain.NewDate(2024, 6, 1)}},
		{"member without id", dto.IssueLoanRequest{BorrowerType: domain.BorrowerMember, Principal: dec(1000), DueDate: domain.NewDate(2024, 6, 1)}},
		{"unknown borrower type", dto.IssueLoanRequest{BorrowerType: "FRIEND", BorrowerName: "X", Principal: dec(1000), DueDate: domain.NewDate(2024, 6, 1)}},
		{"missing due date", dto.IssueLoanRequest{BorrowerType: domain.BorrowerExternal, BorrowerName: "X", Principal: dec(1000)}},
		{"due before issue", dto.IssueLoanRequest{BorrowerType: domain.BorrowerExternal, BorrowerName: "X", Principal: dec(1000), DateIssued: domain.NewDate(2024, 6, 1), DueDate: domain.NewDate(2024, 5, 1)}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.svc.IssueLoan(suite.ctx, tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.Empty(suite.store.Snapshot(suite.ctx).Loans)
}

func (suite *LoanServiceTestSuite) TestIssueLoan_UnknownMemberIsNotFound() {
	_, err := suite.svc.IssueLoan(suite.ctx, dto.IssueLoanRequest{
		BorrowerType: domain.BorrowerMember, MemberID: "ghost", Principal: dec(1000), DueDate: domain.NewDate(2024, 6, 1),
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	snap := suite.store.Snapshot(suite.ctx)
	suite.Empty(snap.Loans)
	suite.Empty(snap.Notifications)
}

func (suite *LoanServiceTestSuite) TestIssueLoan_External() {
	loan, err := suite.svc.IssueLoan(suite.ctx, dto.IssueLoanRequest{
		BorrowerType: domain.BorrowerExternal, BorrowerName: " Kigali Traders ", BorrowerPhone: "0788", Principal: dec(50000), DueDate: domain.NewDate(2024, 6, 1),
	})

	suite.Require().NoError(err)
	suite.Equal("Kigali Traders", loan.BorrowerName)
	suite.Empty(loan.MemberID)
	suite.Equal(domain.DateOf(fixedNow), loan.DateIssued)
}

func (suite *LoanServiceTestSuite) TestRecordLoanPayment_TwoInstalmentsSettleLoan() {
	loan := suite.issueMemberLoan(100000)

	first, err := suite.svc.RecordLoanPayment(suite.ctx, loan.ID, dto.RecordLoanPaymentRequest{
		PrincipalPortion: dec(50000), InterestPortion: dec(5000), MonthsSettled: intPtr(1),
	})
	suite.Require().NoError(err)
	suite.Equal("55000", first.RemainingAmount.String())
	suite.Equal(domain.LoanActive, first.Status)
	suite.Len(first.MonthsPaidHistory, 1)

	second, err := suite.svc.RecordLoanPayment(suite.ctx, loan.ID, dto.RecordLoanPaymentRequest{
		PrincipalPortion: dec(50000), InterestPortion: dec(5000),
	})
	suite.Require().NoError(err)
	suite.True(second.RemainingAmount.IsZero())
	suite.Equal(domain.LoanPaid, second.Status)
	suite.Equal("10000", second.InterestPaid.String())
	suite.Len(second.MonthsPaidHistory, 1)

	snap := suite.store.Snapshot(suite.ctx)
	suite.Equal("Payment recorded for loan "+loan.ID+": 1 month(s) interest paid", snap.Notifications[0].Message)
	suite.Len(snap.Notifications, 2)
}

func (suite *LoanServiceTestSuite) TestRecordLoanPayment_RejectsNonPositiveTotal() {
	loan := suite.issueMemberLoan(100000)
	before := suite.store.Snapshot(suite.ctx)

	_, err := suite.svc.RecordLoanPayment(suite.ctx, loan.ID, dto.RecordLoanPaymentRequest{
		PrincipalPortion: dec(5000), InterestPortion: dec(-5000), MonthsSettled: intPtr(2),
	})

	suite.ErrorIs(err, apperrors.ErrArithmetic)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(before, suite.store.Snapshot(suite.ctx))
}

func (suite *LoanServiceTestSuite) TestRecordLoanPayment_UnknownLoan() {
	_, err := suite.svc.RecordLoanPayment(suite.ctx, "missing", dto.RecordLoanPaymentRequest{PrincipalPortion: dec(1)})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LoanServiceTestSuite) TestListLoans_MembersSeeOnlyTheirOwn() {
	suite.issueMemberLoan(100000)
	_, err := suite.svc.IssueLoan(suite.ctx, dto.IssueLoanRequest{
		BorrowerType: domain.BorrowerExternal, BorrowerName: "Outsider", Principal: dec(1000), DueDate: domain.NewDate(2024, 6, 1),
	})
	suite.Require().NoError(err)

	all, err := suite.svc.ListLoans(suite.ctx, adminActor)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	own, err := suite.svc.ListLoans(suite.ctx, aliceActor)
	suite.Require().NoError(err)
	suite.Len(own, 1)
	suite.Equal("alice", own[0].MemberID)

	none, err := suite.svc.ListLoans(suite.ctx, bobActor)
	suite.Require().NoError(err)
	suite.Empty(none)
	suite.NotNil(none)

	_, err = suite.svc.GetLoan(suite.ctx, bobActor, own[0].ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LoanServiceTestSuite) TestLoanAccrual() {
	loan := suite.issueMemberLoan(100000)

	accrual, err := suite.svc.LoanAccrual(suite.ctx, aliceActor, loan.ID, domain.NewDate(2024, 4, 9))

	suite.Require().NoError(err)
	suite.Equal(2, accrual.MonthsElapsed)
	suite.Equal(2, accrual.MonthsOutstanding)
	suite.Equal("10000", accrual.MonthlyInterestDue.String())
	suite.Equal("20000", accrual.SuggestedInterest.String())
}

func (suite *LoanServiceTestSuite) TestDeleteLoan() {
	loan := suite.issueMemberLoan(100000)

	suite.Require().NoError(suite.svc.DeleteLoan(suite.ctx, loan.ID))

	snap := suite.store.Snapshot(suite.ctx)
	suite.Empty(snap.Loans)
	suite.Equal("Loan record deleted", snap.Notifications[0].Message)
	suite.ErrorIs(suite.svc.DeleteLoan(suite.ctx, loan.ID), apperrors.ErrNotFound)
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
