package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ferrisys/backend/internal/application/entitlement"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/infrastructure/auth"
	"github.com/ferrisys/backend/internal/infrastructure/config"
	"github.com/ferrisys/backend/internal/infrastructure/persistence"
	"github.com/ferrisys/backend/internal/infrastructure/persistence/models"
)

type serviceFixture struct {
	db       *gorm.DB
	authSvc  *AuthService
	adminSvc *AdminService
	tokens   *auth.TokenService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.RoleModel{},
		&models.ModuleModel{},
		&models.UserRoleModel{},
		&models.RoleModuleModel{},
		&models.ModuleLicenseModel{},
	))

	users := persistence.NewGormUserRepository(db)
	roles := persistence.NewGormRoleRepository(db)
	modules := persistence.NewGormModuleRepository(db, entitlement.ModuleName)
	grants := persistence.NewGormRoleModuleRepository(db)
	licenses := persistence.NewGormLicenseRepository(db)

	evaluator := entitlement.NewEvaluator(modules, licenses, config.NewModuleDefaults(nil), nil)
	composer := entitlement.NewComposer(users, roles, grants, evaluator, nil)
	tokens := auth.NewTokenService("test-secret-key-that-is-long-enough", time.Hour, "test")

	return &serviceFixture{
		db:       db,
		authSvc:  NewAuthService(users, tokens, composer, auth.NewInMemoryTokenBlacklist(), zap.NewNop()),
		adminSvc: NewAdminService(users, roles, modules, grants, licenses, zap.NewNop()),
		tokens:   tokens,
	}
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	registered, err := f.authSvc.Register(ctx, RegisterInput{
		Username: "Maria",
		Email:    "maria@example.com",
		FullName: "Maria Lopez",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", registered.Username, "usernames are stored lowercased")

	t.Run("login succeeds with correct credentials", func(t *testing.T) {
		result, err := f.authSvc.Login(ctx, LoginInput{Username: "maria", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, registered.ID, result.User.ID)
		assert.Empty(t, result.Authorities, "no role assigned yet")

		claims, err := f.tokens.Validate(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "maria", claims.Subject)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := f.authSvc.Login(ctx, LoginInput{Username: "maria", Password: "wrong-password"})
		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("unknown user rejected with same error", func(t *testing.T) {
		_, err := f.authSvc.Login(ctx, LoginInput{Username: "nobody", Password: "password123"})
		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := f.authSvc.Register(ctx, RegisterInput{
			Username: "maria",
			Password: "password123",
		})
		require.Error(t, err)
	})
}

func TestAuthServiceLoginDisabledAccount(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	registered, err := f.authSvc.Register(ctx, RegisterInput{
		Username: "maria",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NoError(t, f.adminSvc.DisableUser(ctx, registered.ID))

	_, err = f.authSvc.Login(ctx, LoginInput{Username: "maria", Password: "password123"})
	assert.ErrorIs(t, err, shared.ErrAccountDeactivated)
}

func TestAuthServiceLoginCarriesAuthorities(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	user, err := f.authSvc.Register(ctx, RegisterInput{Username: "maria", Password: "password123"})
	require.NoError(t, err)

	role, err := f.adminSvc.CreateRole(ctx, "VENDEDOR", "")
	require.NoError(t, err)
	module, err := f.adminSvc.CreateModule(ctx, "Inventario", "")
	require.NoError(t, err)
	require.NoError(t, f.adminSvc.SetRoleModules(ctx, role.ID, []uuid.UUID{module.ID}))
	require.NoError(t, f.adminSvc.AssignRole(ctx, user.ID, role.ID))

	result, err := f.authSvc.Login(ctx, LoginInput{Username: "maria", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, []string{"MODULE_INVENTARIO", "ROLE_VENDEDOR"}, result.Authorities)
}

func TestAuthServiceLogoutRevokesToken(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.authSvc.Register(ctx, RegisterInput{Username: "maria", Password: "password123"})
	require.NoError(t, err)
	result, err := f.authSvc.Login(ctx, LoginInput{Username: "maria", Password: "password123"})
	require.NoError(t, err)

	claims, err := f.tokens.Validate(result.Token)
	require.NoError(t, err)

	require.NoError(t, f.authSvc.Logout(ctx, claims.ID, claims.ExpiresAt.Time))

	revoked, err := f.authSvc.blacklist.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAdminServiceLicenseRoundTrip(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	module, err := f.adminSvc.CreateModule(ctx, "Inventario", "")
	require.NoError(t, err)

	tenantID := uuid.New()
	expiry := time.Now().Add(24 * time.Hour)
	saved, err := f.adminSvc.SaveLicense(ctx, tenantID, module.ID, true, &expiry)
	require.NoError(t, err)
	assert.True(t, saved.Enabled)

	all, err := f.adminSvc.ListLicenses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, tenantID, all[0].TenantID)

	t.Run("unknown module rejected", func(t *testing.T) {
		_, err := f.adminSvc.SaveLicense(ctx, tenantID, uuid.New(), true, nil)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestAdminServiceGrantSync(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	role, err := f.adminSvc.CreateRole(ctx, "VENDEDOR", "")
	require.NoError(t, err)
	inventory, err := f.adminSvc.CreateModule(ctx, "Inventario", "")
	require.NoError(t, err)
	quotes, err := f.adminSvc.CreateModule(ctx, "Cotizaciones", "")
	require.NoError(t, err)

	require.NoError(t, f.adminSvc.SetRoleModules(ctx, role.ID, []uuid.UUID{inventory.ID, quotes.ID}))

	granted, err := f.adminSvc.RoleModules(ctx, role.ID)
	require.NoError(t, err)
	assert.Len(t, granted, 2)

	// Replacing with a subset removes the other grant
	require.NoError(t, f.adminSvc.SetRoleModules(ctx, role.ID, []uuid.UUID{quotes.ID}))
	granted, err = f.adminSvc.RoleModules(ctx, role.ID)
	require.NoError(t, err)
	require.Len(t, granted, 1)
	assert.Equal(t, "Cotizaciones", granted[0].Name)

	t.Run("unknown module in set rejected", func(t *testing.T) {
		err := f.adminSvc.SetRoleModules(ctx, role.ID, []uuid.UUID{uuid.New()})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
