package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SamDTech/realtor-api/internal/auth"
	"github.com/SamDTech/realtor-api/internal/config"
	"github.com/SamDTech/realtor-api/internal/domain"
	apperrors "github.com/SamDTech/realtor-api/pkg/util"
)

type memoryUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*domain.User{}}
}

func (m *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.Email] = user
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "signing-secret",
			ProductKeySecret: "product-secret",
			TokenTTLDays:     7,
			BcryptCost:       bcrypt.MinCost,
		},
	}
}

func newTestAuthService(repo *memoryUserRepo) *AuthService {
	return NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: repo})
}

func buyerInput() SignupInput {
	return SignupInput{
		Name:     "Bola Buyer",
		Email:    "buyer@example.com",
		Phone:    "(555) 123-4567",
		Password: "hunter22",
	}
}

func domainStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	de := apperrors.ToDomainError(err)
	require.NotNil(t, de)
	return de.HTTPStatus, de.Message
}

func TestSignup_BuyerWithoutProductKey(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	token, exp, err := svc.Signup(context.Background(), domain.UserRoleBuyer, buyerInput())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)

	user, err := repo.GetByEmail(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleBuyer, user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash, "password is stored hashed")
	assert.True(t, auth.ComparePassword(user.PasswordHash, "hunter22"))

	identity, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, user.Name, identity.Name)
}

func TestSignup_PrivilegedRoleRequiresProductKey(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	input := buyerInput()
	input.Email = "realtor@example.com"

	_, _, err := svc.Signup(context.Background(), domain.UserRoleRealtor, input)
	require.Error(t, err)
	status, _ := domainStatus(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, repo.users, "no record created on authorization failure")
}

func TestSignup_ProductKeyForOtherEmailRejected(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	proof, err := svc.GenerateProductKey("someone-else@example.com", domain.UserRoleRealtor)
	require.NoError(t, err)

	input := buyerInput()
	input.Email = "realtor@example.com"
	input.ProductKey = proof

	_, _, err = svc.Signup(context.Background(), domain.UserRoleRealtor, input)
	require.Error(t, err)
	status, _ := domainStatus(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, repo.users)
}

func TestSignup_ProductKeyForOtherRoleRejected(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	proof, err := svc.GenerateProductKey("admin@example.com", domain.UserRoleRealtor)
	require.NoError(t, err)

	input := buyerInput()
	input.Email = "admin@example.com"
	input.ProductKey = proof

	_, _, err = svc.Signup(context.Background(), domain.UserRoleAdmin, input)
	require.Error(t, err)
	status, _ := domainStatus(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSignup_ValidProductKey(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	proof, err := svc.GenerateProductKey("realtor@example.com", domain.UserRoleRealtor)
	require.NoError(t, err)

	input := buyerInput()
	input.Email = "realtor@example.com"
	input.ProductKey = proof

	token, _, err := svc.Signup(context.Background(), domain.UserRoleRealtor, input)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := repo.GetByEmail(context.Background(), "realtor@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleRealtor, user.Role)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Signup(context.Background(), domain.UserRoleBuyer, buyerInput())
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), domain.UserRoleBuyer, buyerInput())
	require.Error(t, err)
	status, _ := domainStatus(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Len(t, repo.users, 1)
}

func TestSignin_Success(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Signup(context.Background(), domain.UserRoleBuyer, buyerInput())
	require.NoError(t, err)

	token, _, err := svc.Signin(context.Background(), "buyer@example.com", "hunter22")
	require.NoError(t, err)

	identity, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "Bola Buyer", identity.Name)
}

// Unknown email and wrong password must be indistinguishable to callers.
func TestSignin_UniformFailure(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Signup(context.Background(), domain.UserRoleBuyer, buyerInput())
	require.NoError(t, err)

	_, _, wrongPassword := svc.Signin(context.Background(), "buyer@example.com", "wrong")
	require.Error(t, wrongPassword)
	_, _, unknownEmail := svc.Signin(context.Background(), "nobody@example.com", "hunter22")
	require.Error(t, unknownEmail)

	wrongStatus, wrongMsg := domainStatus(t, wrongPassword)
	unknownStatus, unknownMsg := domainStatus(t, unknownEmail)
	assert.Equal(t, http.StatusBadRequest, wrongStatus)
	assert.Equal(t, wrongStatus, unknownStatus)
	assert.Equal(t, wrongMsg, unknownMsg)
}
