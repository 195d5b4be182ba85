package identity

import (
	"strings"

	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Role groups module grants under a single name. Names are stored as entered
// and compared case-insensitively when resolving authority names.
type Role struct {
	shared.BaseEntity
	Name        string
	Description string
	Status      int
}

// Module represents a licensable feature area, independent of any role.
// Names are unique and looked up by their normalized form.
type Module struct {
	shared.BaseEntity
	Name        string
	Description string
	Status      int
}

// RoleModule is a grant making a module eligible for holders of a role.
// Only grants with StatusActive participate in authority resolution.
type RoleModule struct {
	shared.BaseEntity
	RoleID   uuid.UUID
	ModuleID uuid.UUID
	Status   int
}

// NewRole creates an active role
func NewRole(name, description string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_ROLE_NAME", "Role name cannot exceed 100 characters")
	}
	return &Role{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Status:      StatusActive,
	}, nil
}

// NewModule creates an active module
func NewModule(name, description string) (*Module, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_MODULE_NAME", "Module name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_MODULE_NAME", "Module name cannot exceed 100 characters")
	}
	return &Module{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Status:      StatusActive,
	}, nil
}

// NewRoleModule creates an active grant of a module to a role
func NewRoleModule(roleID, moduleID uuid.UUID) *RoleModule {
	return &RoleModule{
		BaseEntity: shared.NewBaseEntity(),
		RoleID:     roleID,
		ModuleID:   moduleID,
		Status:     StatusActive,
	}
}

// IsActive reports whether the role participates in authority resolution
func (r *Role) IsActive() bool {
	return r.Status == StatusActive
}

// IsActive reports whether the module is available for granting
func (m *Module) IsActive() bool {
	return m.Status == StatusActive
}

// IsActive reports whether the grant is in effect
func (g *RoleModule) IsActive() bool {
	return g.Status == StatusActive
}
