package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role IDs. Operators run consultations and see the full analysis; clients only
// interact with their own sessions.
const (
	RoleOperator = 1
	RoleClient   = 2
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	ClientID     string    `json:"client_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	ClientID   string
	jwt.RegisteredClaims
}

// IsOperator reports whether the claims belong to an operator account.
func (c *Claims) IsOperator() bool {
	return c.UserRoleID == RoleOperator
}
