package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
	"github.com/nes268/healmate/pkg/auth"
	"github.com/nes268/healmate/pkg/security"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so the two are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type Service struct {
	users   repository.UserRepository
	hasher  security.PasswordHasher
	jwt     *auth.JWTService
	revoker auth.TokenRevoker
}

func NewService(users repository.UserRepository, hasher security.PasswordHasher,
	jwt *auth.JWTService, revoker auth.TokenRevoker) *Service {
	return &Service{
		users:   users,
		hasher:  hasher,
		jwt:     jwt,
		revoker: revoker,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		BloodGroup:  req.BloodGroup,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// the pre-check races with concurrent registrations; the
		// unique constraint is the authority
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

// Verify checks signature, expiry and the revocation denylist. Callers
// must reject the request when an error is returned.
func (s *Service) Verify(ctx context.Context, token string) (*model.TokenClaims, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoker.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Logout denylists the token's id for its remaining lifetime. Already
// invalid tokens are a no-op success.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.revoker.Revoke(ctx, claims.TokenID, time.Until(claims.ExpiresAt))
}

func (s *Service) issueToken(user *model.User) (*model.TokenResponse, error) {
	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &model.TokenResponse{
		Token: token,
		User:  user.Profile(),
	}, nil
}
