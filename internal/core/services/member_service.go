package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/ledger"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/shopspring/decimal"
)

// memberService implements the MemberSvcFacade interface
type memberService struct {
	BaseService
}

// NewMemberService creates a new member service with the provided options
func NewMemberService(store portsrepo.StateStore, options ...ServiceOption) portssvc.MemberSvcFacade {
	return &memberService{BaseService: newBaseService(store, options...)}
}

// Ensure memberService implements the MemberSvcFacade interface
var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	snap := s.Store.Snapshot(ctx)
	m, ok := domain.FindMember(snap.Members, memberID)
	if !ok {
		return nil, fmt.Errorf("%w: member %s", apperrors.ErrNotFound, memberID)
	}
	return &m, nil
}

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	snap := s.Store.Snapshot(ctx)
	s.LogDebug(ctx, "Members listed", slog.Int("count", len(snap.Members)))
	return snap.Members, nil
}

func (s *memberService) MemberShares(ctx context.Context) ([]domain.MemberShareSummary, error) {
	return ledger.MemberShares(s.Store.Snapshot(ctx)), nil
}

func (s *memberService) ComputeMemberPortfolio(ctx context.Context, actor domain.Actor, memberID string) (*domain.MemberPortfolio, error) {
	if !actor.CanSee(memberID) {
		return nil, fmt.Errorf("%w: members may only view their own portfolio", apperrors.ErrForbidden)
	}
	portfolio, err := ledger.ComputeMemberPortfolio(s.Store.Snapshot(ctx), memberID)
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

func (s *memberService) AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	ctx, span := s.StartSpan(ctx, "MemberService.AddMember")
	defer span.End()

	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}
	member := domain.Member{
		ID:                     uuid.NewString(),
		FullName:               strings.TrimSpace(req.FullName),
		Email:                  strings.TrimSpace(req.Email),
		Phone:                  strings.TrimSpace(req.Phone),
		Role:                   req.Role,
		JoinedDate:             s.orToday(req.JoinedDate),
		Status:                 req.Status,
		HistoricalContribution: decimalOrZero(req.HistoricalContribution),
		HistoricalProfit:       decimalOrZero(req.HistoricalProfit),
	}
	if member.Status == "" {
		member.Status = domain.MemberActive
	}
	if err := validateMember(member); err != nil {
		return nil, err
	}

	note := s.NewNotification("New member added: "+member.FullName, domain.NotificationSuccess)
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		if err := ensureUniqueEmail(snap.Members, member.Email, ""); err != nil {
			return err
		}
		snap.Members = append(snap.Members, member)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add member", slog.String("full_name", member.FullName))
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	s.Publish(ctx, note)
	s.LogInfo(ctx, "Member added", slog.String("member_id", member.ID))
	return &member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	ctx, span := s.StartSpan(ctx, "MemberService.UpdateMember")
	defer span.End()

	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}

	var updated domain.Member
	var note domain.Notification
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		idx := slices.IndexFunc(snap.Members, func(m domain.Member) bool { return m.ID == memberID })
		if idx < 0 {
			return fmt.Errorf("%w: member %s", apperrors.ErrNotFound, memberID)
		}
		m := snap.Members[idx]
		if req.FullName != nil {
			m.FullName = strings.TrimSpace(*req.FullName)
		}
		if req.Email != nil {
			m.Email = strings.TrimSpace(*req.Email)
		}
		if req.Phone != nil {
			m.Phone = strings.TrimSpace(*req.Phone)
		}
		if req.Role != nil {
			m.Role = *req.Role
		}
		if req.Status != nil {
			m.Status = *req.Status
		}
		if req.JoinedDate != nil && !req.JoinedDate.IsZero() {
			m.JoinedDate = *req.JoinedDate
		}
		if req.HistoricalContribution != nil {
			m.HistoricalContribution = *req.HistoricalContribution
		}
		if req.HistoricalProfit != nil {
			m.HistoricalProfit = *req.HistoricalProfit
		}
		if err := validateMember(m); err != nil {
			return err
		}
		if err := ensureUniqueEmail(snap.Members, m.Email, m.ID); err != nil {
			return err
		}
		snap.Members[idx] = m
		updated = m
		note = s.NewNotification("Member updated: "+m.FullName, domain.NotificationInfo)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	s.Publish(ctx, note)
	s.LogInfo(ctx, "Member updated", slog.String("member_id", memberID))
	return &updated, nil
}

func validateMember(m domain.Member) error {
	if m.FullName == "" {
		return fmt.Errorf("%w: full name is required", apperrors.ErrValidation)
	}
	if !m.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, m.Role)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("%w: unknown member status %q", apperrors.ErrValidation, m.Status)
	}
	if err := requireNonNegative("historicalContribution", m.HistoricalContribution); err != nil {
		return err
	}
	return requireNonNegative("historicalProfit", m.HistoricalProfit)
}

func ensureUniqueEmail(members []domain.Member, email, exceptID string) error {
	if email == "" {
		return nil
	}
	for _, m := range members {
		if m.ID != exceptID && strings.EqualFold(m.Email, email) {
			return fmt.Errorf("%w: a member with email %s already exists", apperrors.ErrDuplicate, email)
		}
	}
	return nil
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
