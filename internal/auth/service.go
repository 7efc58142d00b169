package auth

import (
	"context"
	"fmt"

	"github.com/congo-pay/userauth/internal/identity"
)

// Service turns verified credentials into signed tokens.
type Service struct {
	ids    *identity.Service
	signer *Signer
}

// NewService builds a login service that authenticates through ids and
// signs tokens with signer.
func NewService(ids *identity.Service, signer *Signer) *Service {
	return &Service{ids: ids, signer: signer}
}

// Login validates credentials (by delegating to identity.Service) and issues a token.
func (s *Service) Login(ctx context.Context, creds identity.Credentials) (string, error) {
	user, err := s.ids.Authenticate(ctx, creds)
	if err != nil {
		return "", err
	}
	token, err := s.signer.Sign(user.ID)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
