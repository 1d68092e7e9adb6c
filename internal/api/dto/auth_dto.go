package dto

import "time"

// SignupRequest payload for POST /auth/signup/:userType.
type SignupRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,phone"`
	Password   string `json:"password" validate:"required,min=5"`
	ProductKey string `json:"productKey"`
}

// SigninRequest payload for POST /auth/signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProductKeyRequest payload for POST /auth/key.
type ProductKeyRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserType string `json:"userType" validate:"required"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IdentityResponse echoes the request identity for GET /auth/me.
type IdentityResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
