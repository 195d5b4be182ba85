package identity

import (
	"context"

	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository is the user store consumed by the authorization core and the
// admin surface. Lookups return shared.ErrNotFound for absent records.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, int64, error)

	// FindActiveRoleAssignment returns the user's single active role
	// assignment, or (nil, nil) when the user has none. Absence of an
	// assignment is not an error.
	FindActiveRoleAssignment(ctx context.Context, userID uuid.UUID) (*UserRole, error)

	// ReplaceRoleAssignments removes all assignments for the user and
	// installs active assignments for the given roles.
	ReplaceRoleAssignments(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error
}

// RoleRepository manages roles
type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Role, error)
	FindAll(ctx context.Context) ([]Role, error)
}

// ModuleRepository is the module registry. FindByNormalizedName matches the
// stored name case-insensitively against the canonical module-name form.
type ModuleRepository interface {
	Create(ctx context.Context, module *Module) error
	Update(ctx context.Context, module *Module) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Module, error)
	FindByNormalizedName(ctx context.Context, name string) (*Module, error)
	FindAll(ctx context.Context) ([]Module, error)
}

// RoleModuleRepository is the role-grant store
type RoleModuleRepository interface {
	// FindActiveGrants returns the modules granted to the role through
	// grants with active status. Order is not significant.
	FindActiveGrants(ctx context.Context, roleID uuid.UUID) ([]Module, error)

	// ReplaceGrants removes all grants for the role and installs active
	// grants for the given modules.
	ReplaceGrants(ctx context.Context, roleID uuid.UUID, moduleIDs []uuid.UUID) error
}
