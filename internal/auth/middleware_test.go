package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamDTech/realtor-api/internal/domain"
	apperrors "github.com/SamDTech/realtor-api/pkg/util"
)

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (s *stubUserRepo) Create(context.Context, *domain.User) error { return nil }

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newGuardedApp(t *testing.T, tm *TokenManager, users *stubUserRepo, allowed ...domain.UserRole) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		}
		return nil
	})
	app.Use(NewIdentityExtractor(tm).Handle)
	app.Get("/guarded", NewGuard(users).RequireRole(allowed...), func(c *fiber.Ctx) error {
		identity, _ := IdentityFromContext(c)
		return c.JSON(fiber.Map{"id": identity.UserID})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGuard_AnonymousDenied(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	users := &stubUserRepo{users: map[int64]*domain.User{}}

	app := newGuardedApp(t, tm, users, domain.UserRoleRealtor, domain.UserRoleAdmin)
	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Even an "any authenticated" route denies anonymous callers.
	app = newGuardedApp(t, tm, users)
	resp = doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_RoleMembership(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	users := &stubUserRepo{users: map[int64]*domain.User{
		7: {ID: 7, Name: "Jane", Email: "jane@example.com", Role: domain.UserRoleRealtor},
	}}
	token, _, err := tm.Issue(7, "Jane")
	require.NoError(t, err)

	app := newGuardedApp(t, tm, users, domain.UserRoleRealtor, domain.UserRoleAdmin)
	resp := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "REALTOR allowed on {REALTOR, ADMIN}")

	app = newGuardedApp(t, tm, users, domain.UserRoleAdmin)
	resp = doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "REALTOR denied on {ADMIN}")

	app = newGuardedApp(t, tm, users)
	resp = doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "empty set admits any authenticated identity")
}

func TestGuard_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	users := &stubUserRepo{users: map[int64]*domain.User{
		7: {ID: 7, Role: domain.UserRoleRealtor},
	}}
	app := newGuardedApp(t, tm, users, domain.UserRoleRealtor)

	resp := doRequest(t, app, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	otherToken, _, err := NewTokenManager("some-other-secret", time.Hour).Issue(7, "Jane")
	require.NoError(t, err)
	resp = doRequest(t, app, "Bearer "+otherToken)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "mis-signed token must not be trusted")
}

func TestGuard_ExpiredTokenDenied(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	users := &stubUserRepo{users: map[int64]*domain.User{
		7: {ID: 7, Role: domain.UserRoleRealtor},
	}}

	claims := &Claims{
		UserID: 7,
		Name:   "Jane",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	app := newGuardedApp(t, tm, users, domain.UserRoleRealtor)
	resp := doRequest(t, app, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGuard_UnknownSubjectDenied(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	users := &stubUserRepo{users: map[int64]*domain.User{}}
	token, _, err := tm.Issue(99, "Ghost")
	require.NoError(t, err)

	app := newGuardedApp(t, tm, users, domain.UserRoleRealtor)
	resp := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc.def.ghi")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)

	_, ok = bearerToken("")
	assert.False(t, ok)
	_, ok = bearerToken("Basic dXNlcjpwYXNz")
	assert.False(t, ok)
	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)

	token, ok = bearerToken("bearer abc")
	assert.True(t, ok, "scheme match is case-insensitive")
	assert.Equal(t, "abc", token)
}
