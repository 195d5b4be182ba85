package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ferrisys/backend/internal/application/entitlement"
	"github.com/ferrisys/backend/internal/infrastructure/config"
)

func TestBootstrapperIsIdempotent(t *testing.T) {
	db := setupIdentityTestDB(t)
	users := NewGormUserRepository(db)
	roles := NewGormRoleRepository(db)
	modules := NewGormModuleRepository(db, entitlement.ModuleName)
	grants := NewGormRoleModuleRepository(db)

	b := NewBootstrapper(users, roles, modules, grants, zap.NewNop())
	cfg := config.BootstrapConfig{
		Enabled:       true,
		AdminUsername: "admin",
		AdminPassword: "admin-password",
		AdminEmail:    "admin@example.com",
	}
	ctx := context.Background()

	require.NoError(t, b.Run(ctx, cfg))
	require.NoError(t, b.Run(ctx, cfg))

	allModules, err := modules.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allModules, len(coreModules))

	allRoles, err := roles.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, allRoles, 1)
	assert.Equal(t, "ADMIN", allRoles[0].Name)

	granted, err := grants.FindActiveGrants(ctx, allRoles[0].ID)
	require.NoError(t, err)
	assert.Len(t, granted, len(coreModules))

	admin, err := users.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.VerifyPassword("admin-password"))

	assignment, err := users.FindActiveRoleAssignment(ctx, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.Equal(t, allRoles[0].ID, assignment.RoleID)
}
