package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/sangwaemm/The-Partners-App/internal/platform/config"
	"github.com/sangwaemm/The-Partners-App/internal/utils"
)

// authService implements AuthSvcFacade by issuing role-bearing JWT access tokens.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, store portsrepo.StateStore, options ...ServiceOption) portssvc.AuthSvcFacade {
	return &authService{BaseService: newBaseService(store, options...), cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login resolves the member and checks the requested role. Anyone may act as
// MEMBER; manager roles must match the member's own role and, when a manager
// passcode hash is configured, present the passcode.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}
	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	snap := s.Store.Snapshot(ctx)
	member, ok := findLoginMember(snap.Members, req)
	if !ok {
		return nil, fmt.Errorf("%w: member", apperrors.ErrNotFound)
	}
	if member.Status != domain.MemberActive {
		return nil, fmt.Errorf("%w: member is inactive", apperrors.ErrForbidden)
	}
	if req.Role != domain.RoleMember && req.Role != member.Role {
		s.LogInfo(ctx, "Login rejected: role mismatch", slog.String("member_id", member.ID), slog.String("requested_role", string(req.Role)))
		return nil, fmt.Errorf("%w: member cannot act as %s", apperrors.ErrForbidden, req.Role)
	}
	if req.Role.IsManager() && s.cfg.ManagerPasscodeHash != "" && !utils.CheckPasswordHash(req.Passcode, s.cfg.ManagerPasscodeHash) {
		return nil, fmt.Errorf("%w: invalid passcode", apperrors.ErrForbidden)
	}

	token, expiresAt, err := utils.GenerateJWT(member.ID, string(req.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("member_id", member.ID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Member logged in", slog.String("member_id", member.ID), slog.String("role", string(req.Role)))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, Member: member}, nil
}

func findLoginMember(members []domain.Member, req dto.LoginRequest) (domain.Member, bool) {
	if req.MemberID != "" {
		return domain.FindMember(members, req.MemberID)
	}
	for _, m := range members {
		if m.Email != "" && strings.EqualFold(m.Email, strings.TrimSpace(req.Email)) {
			return m, true
		}
	}
	return domain.Member{}, false
}
