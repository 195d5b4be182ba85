package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ferrisys/backend/internal/domain/licensing"
	"github.com/ferrisys/backend/internal/infrastructure/persistence/models"
)

// GormLicenseRepository implements licensing.LicenseRepository using GORM
type GormLicenseRepository struct {
	db *gorm.DB
}

// NewGormLicenseRepository creates a new GormLicenseRepository
func NewGormLicenseRepository(db *gorm.DB) *GormLicenseRepository {
	return &GormLicenseRepository{db: db}
}

// Save upserts the license for its (tenant, module) pair
func (r *GormLicenseRepository) Save(ctx context.Context, license *licensing.ModuleLicense) error {
	model := models.ModuleLicenseModelFromDomain(license)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "expires_at", "updated_at"}),
		}).
		Create(model).Error
}

// FindLicense returns the license for the pair, or (nil, nil) when absent
func (r *GormLicenseRepository) FindLicense(ctx context.Context, tenantID, moduleID uuid.UUID) (*licensing.ModuleLicense, error) {
	var model models.ModuleLicenseModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND module_id = ?", tenantID, moduleID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all licenses
func (r *GormLicenseRepository) FindAll(ctx context.Context) ([]licensing.ModuleLicense, error) {
	var licenseModels []models.ModuleLicenseModel
	if err := r.db.WithContext(ctx).Find(&licenseModels).Error; err != nil {
		return nil, err
	}
	licenses := make([]licensing.ModuleLicense, len(licenseModels))
	for i := range licenseModels {
		licenses[i] = *licenseModels[i].ToDomain()
	}
	return licenses, nil
}

var _ licensing.LicenseRepository = (*GormLicenseRepository)(nil)
