package entitlement

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/licensing"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ModuleDefaults is the deployment-level module switch, keyed by the
// config-key form of the slug (modules.<slug>.enabled). A missing key
// defaults to enabled.
type ModuleDefaults interface {
	Enabled(configKey string) bool
}

// Evaluator decides whether a module is currently usable for a tenant by
// combining the static configuration default with the per-tenant license.
type Evaluator struct {
	modules  identity.ModuleRepository
	licenses licensing.LicenseRepository
	defaults ModuleDefaults
	logger   *zap.Logger
	now      func() time.Time
}

// NewEvaluator creates an entitlement evaluator
func NewEvaluator(
	modules identity.ModuleRepository,
	licenses licensing.LicenseRepository,
	defaults ModuleDefaults,
	logger *zap.Logger,
) *Evaluator {
	return &Evaluator{
		modules:  modules,
		licenses: licenses,
		defaults: defaults,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the evaluator's time source
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.now = now
	return e
}

// Enabled reports whether the module identified by slug is usable for the
// tenant. The decision short-circuits in order: missing inputs deny; a static
// configuration switch-off denies and can never be re-enabled by a license;
// an unknown module falls back to the static default; absence of a license
// falls back to the static default; a disabled license denies regardless of
// expiry; an expiry not strictly in the future denies.
//
// Only store failures are returned as errors; absence of rows is never one.
func (e *Evaluator) Enabled(ctx context.Context, tenantID uuid.UUID, slug string) (bool, error) {
	if tenantID == uuid.Nil || strings.TrimSpace(slug) == "" {
		return false, nil
	}

	staticDefault := e.defaults.Enabled(ConfigKey(slug))
	if !staticDefault {
		return false, nil
	}

	module, err := e.modules.FindByNormalizedName(ctx, ModuleName(slug))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return staticDefault, nil
		}
		return false, err
	}

	license, err := e.licenses.FindLicense(ctx, tenantID, module.ID)
	if err != nil {
		return false, err
	}
	if license == nil {
		return staticDefault, nil
	}

	usable := license.Usable(e.now())
	if !usable && e.logger != nil {
		e.logger.Debug("Module denied by license",
			zap.String("tenant_id", tenantID.String()),
			zap.String("module", module.Name),
			zap.Bool("enabled", license.Enabled),
		)
	}
	return usable, nil
}
