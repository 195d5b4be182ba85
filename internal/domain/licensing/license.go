package licensing

import (
	"time"

	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ModuleLicense is a per-tenant, time-bounded override of module availability.
// At most one license exists per (tenant, module) pair; absence of a license
// means no override. A disabled license always denies regardless of expiry.
type ModuleLicense struct {
	shared.BaseEntity
	TenantID  uuid.UUID
	ModuleID  uuid.UUID
	Enabled   bool
	ExpiresAt *time.Time
}

// NewModuleLicense creates a license for a tenant and module
func NewModuleLicense(tenantID, moduleID uuid.UUID, enabled bool, expiresAt *time.Time) *ModuleLicense {
	return &ModuleLicense{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		ModuleID:   moduleID,
		Enabled:    enabled,
		ExpiresAt:  expiresAt,
	}
}

// Usable reports whether the license permits the module at the given instant.
// A nil expiry never denies on time; an expiry not strictly after now denies
// even when the license is enabled.
func (l *ModuleLicense) Usable(now time.Time) bool {
	if !l.Enabled {
		return false
	}
	if l.ExpiresAt != nil && !l.ExpiresAt.After(now) {
		return false
	}
	return true
}
