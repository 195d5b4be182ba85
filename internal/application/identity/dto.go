package identity

import (
	"time"

	"github.com/google/uuid"
)

// LoginInput carries the credentials presented at login
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is returned on successful authentication
type LoginResult struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserInfo  `json:"user"`
	Authorities []string  `json:"authorities"`
}

// RegisterInput carries the fields for a new account
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

// UserInfo is the user representation returned to clients
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Status   int       `json:"status"`
}

// RoleInfo is the role representation returned to clients
type RoleInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      int       `json:"status"`
}

// ModuleInfo is the module representation returned to clients
type ModuleInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      int       `json:"status"`
}

// LicenseInfo is the module-license representation returned to clients
type LicenseInfo struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	ModuleID  uuid.UUID  `json:"module_id"`
	Enabled   bool       `json:"enabled"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
