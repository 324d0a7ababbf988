package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// MemberReaderSvc defines read operations for members.
type MemberReaderSvc interface {
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)

	// MemberShares derives the share table for every member.
	MemberShares(ctx context.Context) ([]domain.MemberShareSummary, error)

	// ComputeMemberPortfolio derives the personal financial view of a member.
	// A MEMBER actor may only view their own portfolio.
	ComputeMemberPortfolio(ctx context.Context, actor domain.Actor, memberID string) (*domain.MemberPortfolio, error)
}

// MemberWriterSvc defines write operations for members. Members are never deleted.
type MemberWriterSvc interface {
	AddMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)
}

// MemberSvcFacade combines all member-related service interfaces.
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
