package identity

import (
	"regexp"
	"strings"

	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Status codes shared by users, roles, modules and assignment records.
// 1 marks an active record; anything else is treated as inactive.
const (
	StatusActive   = 1
	StatusInactive = 0
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents an authenticatable principal. Users are never hard-deleted
// from the authority-resolution path; they are disabled via Status.
type User struct {
	shared.BaseEntity
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	Status       int
}

// UserRole is the assignment record binding a user to its role.
// For a given user at most one assignment with StatusActive exists.
type UserRole struct {
	shared.BaseEntity
	UserID uuid.UUID
	RoleID uuid.UUID
	Status int
}

// NewUser creates a new active user with a hashed credential
func NewUser(username, email, fullName, password string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     strings.ToLower(strings.TrimSpace(username)),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: hash,
		Status:       StatusActive,
	}, nil
}

// NewUserRole creates an active role assignment for a user
func NewUserRole(userID, roleID uuid.UUID) *UserRole {
	return &UserRole{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		RoleID:     roleID,
		Status:     StatusActive,
	}
}

// VerifyPassword verifies if the provided password matches the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetPassword replaces the stored credential hash
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// IsActive returns true if the user may authenticate
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// Disable marks the user inactive without removing the record
func (u *User) Disable() {
	u.Status = StatusInactive
	u.Touch()
}

// IsActive reports whether the assignment is in effect
func (a *UserRole) IsActive() bool {
	return a.Status == StatusActive
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}

	usernameRegex := regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers, underscores, hyphens, and dots")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
