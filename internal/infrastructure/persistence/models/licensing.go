package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ferrisys/backend/internal/domain/licensing"
)

// ModuleLicenseModel is the GORM model for per-tenant module licenses
type ModuleLicenseModel struct {
	BaseModel
	TenantID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tenant_module"`
	ModuleID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tenant_module"`
	Enabled   bool       `gorm:"not null;default:true"`
	ExpiresAt *time.Time `gorm:""`
}

// TableName specifies the table name
func (ModuleLicenseModel) TableName() string { return "module_licenses" }

// ToDomain converts the model to a domain license
func (m *ModuleLicenseModel) ToDomain() *licensing.ModuleLicense {
	return &licensing.ModuleLicense{
		BaseEntity: m.BaseModel.ToDomain(),
		TenantID:   m.TenantID,
		ModuleID:   m.ModuleID,
		Enabled:    m.Enabled,
		ExpiresAt:  m.ExpiresAt,
	}
}

// ModuleLicenseModelFromDomain converts a domain license to the model
func ModuleLicenseModelFromDomain(l *licensing.ModuleLicense) *ModuleLicenseModel {
	m := &ModuleLicenseModel{
		TenantID:  l.TenantID,
		ModuleID:  l.ModuleID,
		Enabled:   l.Enabled,
		ExpiresAt: l.ExpiresAt,
	}
	m.FromDomain(l.BaseEntity)
	return m
}
