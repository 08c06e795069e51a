package models

import "github.com/golang-jwt/jwt/v5"

// UserRole enumerates roles accepted by this service.
type UserRole string

// Roles recognised on access tokens issued by the identity service.
const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleFrontDesk  UserRole = "FRONT_DESK"
)

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	jwt.RegisteredClaims
}
