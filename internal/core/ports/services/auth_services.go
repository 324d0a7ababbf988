package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// AuthSvcFacade performs the role login.
type AuthSvcFacade interface {
	// Login resolves the member, checks the requested role and issues an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
