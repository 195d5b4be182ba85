package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/infrastructure/config"
)

// coreModules are registered on first startup so role grants have something
// to point at. Names are stored as entered and matched by normalized form.
var coreModules = []struct {
	name        string
	description string
}{
	{"Autenticación", "Gestión de usuarios, roles y sesiones"},
	{"Inventario", "Catálogo de productos y categorías"},
	{"Clientes", "Registro de clientes"},
	{"Proveedores", "Registro de proveedores"},
	{"Compras", "Órdenes de compra a proveedores"},
	{"Cotizaciones", "Cotizaciones a clientes"},
}

// Bootstrapper seeds the minimum records a fresh installation needs:
// the module registry, an ADMIN role granted every module, and the
// administrator account. Every step is idempotent.
type Bootstrapper struct {
	users   identity.UserRepository
	roles   identity.RoleRepository
	modules identity.ModuleRepository
	grants  identity.RoleModuleRepository
	logger  *zap.Logger
}

// NewBootstrapper creates a bootstrapper over the given repositories
func NewBootstrapper(
	users identity.UserRepository,
	roles identity.RoleRepository,
	modules identity.ModuleRepository,
	grants identity.RoleModuleRepository,
	logger *zap.Logger,
) *Bootstrapper {
	return &Bootstrapper{
		users:   users,
		roles:   roles,
		modules: modules,
		grants:  grants,
		logger:  logger,
	}
}

// Run seeds modules, the ADMIN role and the administrator account
func (b *Bootstrapper) Run(ctx context.Context, cfg config.BootstrapConfig) error {
	moduleIDs, err := b.seedModules(ctx)
	if err != nil {
		return fmt.Errorf("seed modules: %w", err)
	}

	adminRole, err := b.seedAdminRole(ctx, moduleIDs)
	if err != nil {
		return fmt.Errorf("seed admin role: %w", err)
	}

	if err := b.seedAdminUser(ctx, cfg, adminRole.ID); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	b.logger.Info("bootstrap completed")
	return nil
}

func (b *Bootstrapper) seedModules(ctx context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(coreModules))
	for _, cm := range coreModules {
		existing, err := b.modules.FindByNormalizedName(ctx, cm.name)
		if err == nil {
			ids = append(ids, existing.ID)
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}

		module, err := identity.NewModule(cm.name, cm.description)
		if err != nil {
			return nil, err
		}
		if err := b.modules.Create(ctx, module); err != nil {
			return nil, err
		}
		b.logger.Info("registered module", zap.String("name", cm.name))
		ids = append(ids, module.ID)
	}
	return ids, nil
}

func (b *Bootstrapper) seedAdminRole(ctx context.Context, moduleIDs []uuid.UUID) (*identity.Role, error) {
	roles, err := b.roles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if roles[i].Name == "ADMIN" {
			return &roles[i], nil
		}
	}

	role, err := identity.NewRole("ADMIN", "Administrador con acceso a todos los módulos")
	if err != nil {
		return nil, err
	}
	if err := b.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	if err := b.grants.ReplaceGrants(ctx, role.ID, moduleIDs); err != nil {
		return nil, err
	}
	b.logger.Info("created ADMIN role", zap.Int("modules_granted", len(moduleIDs)))
	return role, nil
}

func (b *Bootstrapper) seedAdminUser(ctx context.Context, cfg config.BootstrapConfig, roleID uuid.UUID) error {
	if _, err := b.users.FindByUsername(ctx, cfg.AdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	password := cfg.AdminPassword
	if password == "" {
		// Development convenience only; production config requires a password
		password = "changeme-" + uuid.New().String()[:8]
		b.logger.Warn("generated admin password", zap.String("password", password))
	}

	user, err := identity.NewUser(cfg.AdminUsername, cfg.AdminEmail, "Administrator", password)
	if err != nil {
		return err
	}
	if err := b.users.Create(ctx, user); err != nil {
		return err
	}
	if err := b.users.ReplaceRoleAssignments(ctx, user.ID, []uuid.UUID{roleID}); err != nil {
		return err
	}
	b.logger.Info("created admin user", zap.String("username", user.Username))
	return nil
}
