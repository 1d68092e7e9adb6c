package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/SamDTech/realtor-api/internal/domain"
	"github.com/SamDTech/realtor-api/internal/repository"
	apperrors "github.com/SamDTech/realtor-api/pkg/util"
)

const actorKey = "auth_actor"

// Guard evaluates route role policy against the extracted identity. Tokens
// carry only the subject, so the acting user's current role comes from the
// credential store.
type Guard struct {
	users repository.UserRepository
}

// NewGuard constructs the guard.
func NewGuard(users repository.UserRepository) *Guard {
	return &Guard{users: users}
}

// RequireRole allows the request through when an identity is present and its
// role belongs to the declared set. An empty set means any authenticated
// identity. Denials short-circuit before route logic runs: missing identity
// is 401, a role outside the set is 403.
func (g *Guard) RequireRole(allowed ...domain.UserRole) fiber.Handler {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}

		actor, err := g.users.GetByID(c.Context(), identity.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUnauthorized("authentication required")
			}
			return apperrors.MapError(err)
		}

		if len(allowedSet) > 0 {
			if _, exists := allowedSet[actor.Role]; !exists {
				return apperrors.NewForbidden("insufficient role")
			}
		}

		c.Locals(actorKey, actor)
		return c.Next()
	}
}

// ActorFromContext retrieves the user record loaded by the guard.
func ActorFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(actorKey)
	if val == nil {
		return nil, false
	}
	actor, ok := val.(*domain.User)
	return actor, ok
}
