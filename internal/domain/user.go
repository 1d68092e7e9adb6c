package domain

import "time"

// UserRole enumerates account roles. BUYER accounts are self-service;
// REALTOR and ADMIN accounts require a product key at signup.
type UserRole string

const (
	UserRoleBuyer   UserRole = "BUYER"
	UserRoleRealtor UserRole = "REALTOR"
	UserRoleAdmin   UserRole = "ADMIN"
)

// ParseUserRole maps a path/body value onto the closed role set.
func ParseUserRole(value string) (UserRole, bool) {
	switch UserRole(value) {
	case UserRoleBuyer, UserRoleRealtor, UserRoleAdmin:
		return UserRole(value), true
	}
	return "", false
}

// User is the credential record behind signup/signin.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
