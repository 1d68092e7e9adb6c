package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/SamDTech/realtor-api/internal/api/dto"
	"github.com/SamDTech/realtor-api/internal/auth"
	"github.com/SamDTech/realtor-api/internal/domain"
	"github.com/SamDTech/realtor-api/internal/service"
	apperrors "github.com/SamDTech/realtor-api/pkg/util"
)

// AuthHandler exposes signup, signin and product key endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /auth/signup/:userType.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	role, ok := domain.ParseUserRole(c.Params("userType"))
	if !ok {
		return apperrors.NewValidationError("unknown user type", nil)
	}

	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid payload", details)
	}

	token, exp, err := h.auth.Signup(c.Context(), role, service.SignupInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		ProductKey: req.ProductKey,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{Token: token, ExpiresAt: exp})
}

// Signin handles POST /auth/signin.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid payload", details)
	}

	token, exp, err := h.auth.Signin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{Token: token, ExpiresAt: exp})
}

// GenerateProductKey handles POST /auth/key. The route is guarded; only an
// authenticated ADMIN reaches this handler.
func (h *AuthHandler) GenerateProductKey(c *fiber.Ctx) error {
	var req dto.ProductKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if details := dto.Validate(req); details != nil {
		return apperrors.NewValidationError("invalid payload", details)
	}
	role, ok := domain.ParseUserRole(req.UserType)
	if !ok {
		return apperrors.NewValidationError("unknown user type", nil)
	}

	proof, err := h.auth.GenerateProductKey(req.Email, role)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"productKey": proof})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	resp := dto.IdentityResponse{
		ID:        identity.UserID,
		Name:      identity.Name,
		IssuedAt:  identity.IssuedAt,
		ExpiresAt: identity.ExpiresAt,
	}
	if actor, ok := auth.ActorFromContext(c); ok {
		resp.Role = string(actor.Role)
	}
	return c.JSON(resp)
}
