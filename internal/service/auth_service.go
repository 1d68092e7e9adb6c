package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SamDTech/realtor-api/internal/auth"
	"github.com/SamDTech/realtor-api/internal/config"
	"github.com/SamDTech/realtor-api/internal/domain"
	"github.com/SamDTech/realtor-api/internal/events"
	"github.com/SamDTech/realtor-api/internal/repository"
	apperrors "github.com/SamDTech/realtor-api/pkg/util"
)

// SignupInput carries the signup request fields.
type SignupInput struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	ProductKey string
}

// AuthService coordinates signup, signin and product key issuance.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	productKey *auth.ProductKeyCodec
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service. Both secrets come from immutable config
// loaded at process start.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		productKey: auth.NewProductKeyCodec(cfg.Auth.ProductKeySecret, cfg.Auth.BcryptCost),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Signup creates a credential record and returns a bearer token for it.
// Privileged roles must present a product key proof minted for exactly this
// (email, role) pair; the proof check and the duplicate-email check both run
// before anything is written, so a failed signup leaves no state behind.
func (s *AuthService) Signup(ctx context.Context, role domain.UserRole, input SignupInput) (string, time.Time, error) {
	if role != domain.UserRoleBuyer {
		if input.ProductKey == "" {
			return "", time.Time{}, apperrors.NewUnauthorized("product key is required")
		}
		if !s.productKey.Verify(input.Email, role, input.ProductKey) {
			return "", time.Time{}, apperrors.NewUnauthorized("product key is not valid")
		}
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return "", time.Time{}, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Name)
	if err != nil {
		return "", time.Time{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventUserRegistered,
			UserID:  user.ID,
			Payload: map[string]any{"role": string(user.Role)},
		})
	}
	return token, exp, nil
}

// Signin authenticates a credential record and returns a bearer token.
// Unknown email and wrong password produce the same failure so responses
// cannot be used to enumerate accounts.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", time.Time{}, err
	}

	if !auth.ComparePassword(user.PasswordHash, password) {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	return s.tokenMgr.Issue(user.ID, user.Name)
}

// GenerateProductKey mints a proof authorizing signup for the given pair.
// Route policy restricts who may call this; the codec itself is policy-free.
func (s *AuthService) GenerateProductKey(email string, role domain.UserRole) (string, error) {
	return s.productKey.Issue(email, role)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
