package entitlement

import (
	"context"
	"errors"
	"strings"

	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Composer combines a principal's role and its granted modules, each gated by
// the entitlement evaluator, into the authority set for the request. It only
// reads; no partial set is ever produced on failure.
type Composer struct {
	users     identity.UserRepository
	roles     identity.RoleRepository
	grants    identity.RoleModuleRepository
	evaluator *Evaluator
	logger    *zap.Logger
}

// NewComposer creates an authority composer
func NewComposer(
	users identity.UserRepository,
	roles identity.RoleRepository,
	grants identity.RoleModuleRepository,
	evaluator *Evaluator,
	logger *zap.Logger,
) *Composer {
	return &Composer{
		users:     users,
		roles:     roles,
		grants:    grants,
		evaluator: evaluator,
		logger:    logger,
	}
}

// Compose resolves the authority set for the user. A user without an active
// role assignment yields an empty set. Module grants are checked against the
// entitlement evaluator using the user's own ID as the tenant scope; modules
// the tenant is not entitled to are dropped while the role authority stays.
func (c *Composer) Compose(ctx context.Context, user *identity.User) (AuthoritySet, error) {
	authorities := NewAuthoritySet()

	assignment, err := c.users.FindActiveRoleAssignment(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return authorities, nil
	}

	role, err := c.roles.FindByID(ctx, assignment.RoleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return authorities, nil
		}
		return nil, err
	}

	if strings.TrimSpace(role.Name) != "" {
		authorities.Add(RoleAuthority(role.Name))
	}

	modules, err := c.grants.FindActiveGrants(ctx, role.ID)
	if err != nil {
		return nil, err
	}

	for _, module := range modules {
		if strings.TrimSpace(module.Name) == "" {
			continue
		}
		enabled, err := c.evaluator.Enabled(ctx, user.ID, module.Name)
		if err != nil {
			return nil, err
		}
		if enabled {
			authorities.Add(ModuleAuthority(module.Name))
		}
	}

	if c.logger != nil {
		c.logger.Debug("Authorities composed",
			zap.String("username", user.Username),
			zap.Strings("authorities", authorities.Values()),
		)
	}

	return authorities, nil
}
