package entitlement

import (
	"context"

	"github.com/google/uuid"

	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/licensing"
	"github.com/ferrisys/backend/internal/domain/shared"
)

// staticDefaults is a ModuleDefaults backed by a plain map
type staticDefaults map[string]bool

func (d staticDefaults) Enabled(configKey string) bool {
	if v, ok := d[configKey]; ok {
		return v
	}
	return true
}

// fakeModuleRepo serves modules by normalized name
type fakeModuleRepo struct {
	modules []identity.Module
	err     error
}

func (r *fakeModuleRepo) Create(context.Context, *identity.Module) error { return nil }
func (r *fakeModuleRepo) Update(context.Context, *identity.Module) error { return nil }
func (r *fakeModuleRepo) Delete(context.Context, uuid.UUID) error        { return nil }

func (r *fakeModuleRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.Module, error) {
	for i := range r.modules {
		if r.modules[i].ID == id {
			return &r.modules[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeModuleRepo) FindByNormalizedName(_ context.Context, name string) (*identity.Module, error) {
	if r.err != nil {
		return nil, r.err
	}
	want := ModuleName(name)
	for i := range r.modules {
		if ModuleName(r.modules[i].Name) == want {
			return &r.modules[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeModuleRepo) FindAll(context.Context) ([]identity.Module, error) {
	return r.modules, r.err
}

// fakeLicenseRepo serves licenses by (tenant, module) pair
type fakeLicenseRepo struct {
	licenses []licensing.ModuleLicense
	err      error
}

func (r *fakeLicenseRepo) Save(context.Context, *licensing.ModuleLicense) error { return nil }

func (r *fakeLicenseRepo) FindLicense(_ context.Context, tenantID, moduleID uuid.UUID) (*licensing.ModuleLicense, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.licenses {
		if r.licenses[i].TenantID == tenantID && r.licenses[i].ModuleID == moduleID {
			return &r.licenses[i], nil
		}
	}
	return nil, nil
}

func (r *fakeLicenseRepo) FindAll(context.Context) ([]licensing.ModuleLicense, error) {
	return r.licenses, r.err
}

// fakeUserRepo serves users and their role assignments
type fakeUserRepo struct {
	users       []identity.User
	assignments []identity.UserRole
	err         error
}

func (r *fakeUserRepo) Create(context.Context, *identity.User) error { return nil }
func (r *fakeUserRepo) Update(context.Context, *identity.User) error { return nil }
func (r *fakeUserRepo) Delete(context.Context, uuid.UUID) error      { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			return &r.users[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.users {
		if r.users[i].Username == username {
			return &r.users[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) FindAll(context.Context, shared.Filter) ([]identity.User, int64, error) {
	return r.users, int64(len(r.users)), nil
}

func (r *fakeUserRepo) FindActiveRoleAssignment(_ context.Context, userID uuid.UUID) (*identity.UserRole, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.assignments {
		if r.assignments[i].UserID == userID && r.assignments[i].IsActive() {
			return &r.assignments[i], nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ReplaceRoleAssignments(context.Context, uuid.UUID, []uuid.UUID) error {
	return nil
}

// fakeRoleRepo serves roles by ID
type fakeRoleRepo struct {
	roles []identity.Role
}

func (r *fakeRoleRepo) Create(context.Context, *identity.Role) error { return nil }
func (r *fakeRoleRepo) Update(context.Context, *identity.Role) error { return nil }
func (r *fakeRoleRepo) Delete(context.Context, uuid.UUID) error      { return nil }

func (r *fakeRoleRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.Role, error) {
	for i := range r.roles {
		if r.roles[i].ID == id {
			return &r.roles[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeRoleRepo) FindAll(context.Context) ([]identity.Role, error) {
	return r.roles, nil
}

// fakeGrantRepo serves role grants
type fakeGrantRepo struct {
	grants map[uuid.UUID][]identity.Module
	err    error
}

func (r *fakeGrantRepo) FindActiveGrants(_ context.Context, roleID uuid.UUID) ([]identity.Module, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.grants[roleID], nil
}

func (r *fakeGrantRepo) ReplaceGrants(context.Context, uuid.UUID, []uuid.UUID) error {
	return nil
}

var (
	_ identity.ModuleRepository     = (*fakeModuleRepo)(nil)
	_ licensing.LicenseRepository   = (*fakeLicenseRepo)(nil)
	_ identity.UserRepository       = (*fakeUserRepo)(nil)
	_ identity.RoleRepository       = (*fakeRoleRepo)(nil)
	_ identity.RoleModuleRepository = (*fakeGrantRepo)(nil)
)
