package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/licensing"
	"github.com/ferrisys/backend/internal/domain/shared"
)

// AdminService is the administrative surface for users, roles, the module
// registry, role grants and tenant licenses.
type AdminService struct {
	users    identity.UserRepository
	roles    identity.RoleRepository
	modules  identity.ModuleRepository
	grants   identity.RoleModuleRepository
	licenses licensing.LicenseRepository
	logger   *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(
	users identity.UserRepository,
	roles identity.RoleRepository,
	modules identity.ModuleRepository,
	grants identity.RoleModuleRepository,
	licenses licensing.LicenseRepository,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		users:    users,
		roles:    roles,
		modules:  modules,
		grants:   grants,
		licenses: licenses,
		logger:   logger,
	}
}

// ListUsers returns users matching the filter
func (s *AdminService) ListUsers(ctx context.Context, filter shared.Filter) ([]UserInfo, int64, error) {
	users, total, err := s.users.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	infos := make([]UserInfo, len(users))
	for i := range users {
		infos[i] = toUserInfo(&users[i])
	}
	return infos, total, nil
}

// GetUser returns a single user
func (s *AdminService) GetUser(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(user)
	return &info, nil
}

// CreateUser creates an account on behalf of an administrator
func (s *AdminService) CreateUser(ctx context.Context, input RegisterInput) (*UserInfo, error) {
	user, err := identity.NewUser(input.Username, input.Email, input.FullName, input.Password)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.String("username", user.Username))
	info := toUserInfo(user)
	return &info, nil
}

// DisableUser marks the account inactive, keeping the record
func (s *AdminService) DisableUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.Disable()
	return s.users.Update(ctx, user)
}

// DeleteUser removes the account and its role assignments
func (s *AdminService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

// AssignRole gives the user a single active role, replacing any previous one
func (s *AdminService) AssignRole(ctx context.Context, userID, roleID uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return err
	}
	if err := s.users.ReplaceRoleAssignments(ctx, userID, []uuid.UUID{roleID}); err != nil {
		return err
	}
	s.logger.Info("role assigned",
		zap.String("user_id", userID.String()),
		zap.String("role_id", roleID.String()),
	)
	return nil
}

// ListRoles returns all roles
func (s *AdminService) ListRoles(ctx context.Context) ([]RoleInfo, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]RoleInfo, len(roles))
	for i, r := range roles {
		infos[i] = RoleInfo{ID: r.ID, Name: r.Name, Description: r.Description, Status: r.Status}
	}
	return infos, nil
}

// CreateRole creates a role
func (s *AdminService) CreateRole(ctx context.Context, name, description string) (*RoleInfo, error) {
	role, err := identity.NewRole(name, description)
	if err != nil {
		return nil, err
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return &RoleInfo{ID: role.ID, Name: role.Name, Description: role.Description, Status: role.Status}, nil
}

// DeleteRole removes a role with its grants and assignments
func (s *AdminService) DeleteRole(ctx context.Context, id uuid.UUID) error {
	return s.roles.Delete(ctx, id)
}

// ListModules returns the module registry
func (s *AdminService) ListModules(ctx context.Context) ([]ModuleInfo, error) {
	modules, err := s.modules.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]ModuleInfo, len(modules))
	for i, m := range modules {
		infos[i] = ModuleInfo{ID: m.ID, Name: m.Name, Description: m.Description, Status: m.Status}
	}
	return infos, nil
}

// CreateModule registers a module
func (s *AdminService) CreateModule(ctx context.Context, name, description string) (*ModuleInfo, error) {
	module, err := identity.NewModule(name, description)
	if err != nil {
		return nil, err
	}
	if err := s.modules.Create(ctx, module); err != nil {
		return nil, err
	}
	return &ModuleInfo{ID: module.ID, Name: module.Name, Description: module.Description, Status: module.Status}, nil
}

// DeleteModule removes a module and its grants
func (s *AdminService) DeleteModule(ctx context.Context, id uuid.UUID) error {
	return s.modules.Delete(ctx, id)
}

// RoleModules returns the modules granted to a role
func (s *AdminService) RoleModules(ctx context.Context, roleID uuid.UUID) ([]ModuleInfo, error) {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return nil, err
	}
	modules, err := s.grants.FindActiveGrants(ctx, roleID)
	if err != nil {
		return nil, err
	}
	infos := make([]ModuleInfo, len(modules))
	for i, m := range modules {
		infos[i] = ModuleInfo{ID: m.ID, Name: m.Name, Description: m.Description, Status: m.Status}
	}
	return infos, nil
}

// SetRoleModules replaces the role's grants with the given modules
func (s *AdminService) SetRoleModules(ctx context.Context, roleID uuid.UUID, moduleIDs []uuid.UUID) error {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return err
	}
	for _, moduleID := range moduleIDs {
		if _, err := s.modules.FindByID(ctx, moduleID); err != nil {
			return err
		}
	}
	if err := s.grants.ReplaceGrants(ctx, roleID, moduleIDs); err != nil {
		return err
	}
	s.logger.Info("role grants replaced",
		zap.String("role_id", roleID.String()),
		zap.Int("modules", len(moduleIDs)),
	)
	return nil
}

// SaveLicense upserts the license for a (tenant, module) pair
func (s *AdminService) SaveLicense(ctx context.Context, tenantID, moduleID uuid.UUID, enabled bool, expiresAt *time.Time) (*LicenseInfo, error) {
	if _, err := s.modules.FindByID(ctx, moduleID); err != nil {
		return nil, err
	}
	license := licensing.NewModuleLicense(tenantID, moduleID, enabled, expiresAt)
	if err := s.licenses.Save(ctx, license); err != nil {
		return nil, err
	}
	s.logger.Info("license saved",
		zap.String("tenant_id", tenantID.String()),
		zap.String("module_id", moduleID.String()),
		zap.Bool("enabled", enabled),
	)
	return &LicenseInfo{
		ID:        license.ID,
		TenantID:  license.TenantID,
		ModuleID:  license.ModuleID,
		Enabled:   license.Enabled,
		ExpiresAt: license.ExpiresAt,
	}, nil
}

// ListLicenses returns all licenses
func (s *AdminService) ListLicenses(ctx context.Context) ([]LicenseInfo, error) {
	licenses, err := s.licenses.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]LicenseInfo, len(licenses))
	for i, l := range licenses {
		infos[i] = LicenseInfo{
			ID:        l.ID,
			TenantID:  l.TenantID,
			ModuleID:  l.ModuleID,
			Enabled:   l.Enabled,
			ExpiresAt: l.ExpiresAt,
		}
	}
	return infos, nil
}
