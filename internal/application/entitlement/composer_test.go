package entitlement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/licensing"
	"github.com/ferrisys/backend/internal/domain/shared"
)

type composerFixture struct {
	user     *identity.User
	users    *fakeUserRepo
	roles    *fakeRoleRepo
	grants   *fakeGrantRepo
	licenses *fakeLicenseRepo
	modules  *fakeModuleRepo
}

func newComposerFixture(roleName string, moduleNames ...string) *composerFixture {
	user := &identity.User{
		BaseEntity: shared.NewBaseEntity(),
		Username:   "maria",
		Status:     identity.StatusActive,
	}

	role := identity.Role{
		BaseEntity: shared.NewBaseEntity(),
		Name:       roleName,
		Status:     identity.StatusActive,
	}

	granted := make([]identity.Module, len(moduleNames))
	for i, name := range moduleNames {
		granted[i] = newModule(name)
	}

	return &composerFixture{
		user: user,
		users: &fakeUserRepo{
			users:       []identity.User{*user},
			assignments: []identity.UserRole{*identity.NewUserRole(user.ID, role.ID)},
		},
		roles:    &fakeRoleRepo{roles: []identity.Role{role}},
		grants:   &fakeGrantRepo{grants: map[uuid.UUID][]identity.Module{role.ID: granted}},
		licenses: &fakeLicenseRepo{},
		modules:  &fakeModuleRepo{modules: granted},
	}
}

func (f *composerFixture) composer(defaults staticDefaults) *Composer {
	evaluator := NewEvaluator(f.modules, f.licenses, defaults, nil)
	return NewComposer(f.users, f.roles, f.grants, evaluator, nil)
}

func TestComposeRoleAndModules(t *testing.T) {
	f := newComposerFixture("ADMIN", "Core De Autenticación", "Inventario")

	authorities, err := f.composer(staticDefaults{}).Compose(context.Background(), f.user)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"MODULE_CORE_DE_AUTENTICACION",
		"MODULE_INVENTARIO",
		"ROLE_ADMIN",
	}, authorities.Values())
}

func TestComposeWithoutAssignmentYieldsEmptySet(t *testing.T) {
	f := newComposerFixture("ADMIN", "Inventario")
	f.users.assignments = nil

	authorities, err := f.composer(staticDefaults{}).Compose(context.Background(), f.user)
	require.NoError(t, err)
	assert.Empty(t, authorities)
}

func TestComposeDanglingRoleYieldsEmptySet(t *testing.T) {
	f := newComposerFixture("ADMIN", "Inventario")
	f.roles.roles = nil

	authorities, err := f.composer(staticDefaults{}).Compose(context.Background(), f.user)
	require.NoError(t, err)
	assert.Empty(t, authorities)
}

func TestComposeDropsUnentitledModules(t *testing.T) {
	f := newComposerFixture("VENDEDOR", "Inventario", "Cotizaciones")

	// A static switch-off drops the module authority but keeps the role
	authorities, err := f.composer(staticDefaults{"cotizaciones": false}).
		Compose(context.Background(), f.user)
	require.NoError(t, err)

	assert.Equal(t, []string{"MODULE_INVENTARIO", "ROLE_VENDEDOR"}, authorities.Values())
}

func TestComposeDropsExpiredLicensedModule(t *testing.T) {
	f := newComposerFixture("VENDEDOR", "Inventario")
	expired := time.Now().Add(-time.Hour)
	f.licenses.licenses = []licensing.ModuleLicense{
		*licensing.NewModuleLicense(f.user.ID, f.modules.modules[0].ID, true, &expired),
	}

	authorities, err := f.composer(staticDefaults{}).Compose(context.Background(), f.user)
	require.NoError(t, err)

	assert.Equal(t, []string{"ROLE_VENDEDOR"}, authorities.Values())
}

func TestComposeNoPartialSetOnFailure(t *testing.T) {
	f := newComposerFixture("VENDEDOR", "Inventario", "Cotizaciones")
	storeErr := errors.New("connection refused")
	f.licenses.err = storeErr

	authorities, err := f.composer(staticDefaults{}).Compose(context.Background(), f.user)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, authorities)
}

func TestComposeGrantLookupFailure(t *testing.T) {
	f := newComposerFixture("VENDEDOR", "Inventario")
	storeErr := errors.New("connection refused")
	f.grants.err = storeErr

	authorities, err := f.composer(staticDefaults{}).Compose(context.Background(), f.user)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, authorities)
}
