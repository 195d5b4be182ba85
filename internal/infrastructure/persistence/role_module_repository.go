package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/infrastructure/persistence/models"
)

// GormRoleModuleRepository implements identity.RoleModuleRepository using GORM
type GormRoleModuleRepository struct {
	db *gorm.DB
}

// NewGormRoleModuleRepository creates a new GormRoleModuleRepository
func NewGormRoleModuleRepository(db *gorm.DB) *GormRoleModuleRepository {
	return &GormRoleModuleRepository{db: db}
}

// FindActiveGrants returns the modules granted to the role through active grants
func (r *GormRoleModuleRepository) FindActiveGrants(ctx context.Context, roleID uuid.UUID) ([]identity.Module, error) {
	var moduleModels []models.ModuleModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN role_modules ON role_modules.module_id = modules.id").
		Where("role_modules.role_id = ? AND role_modules.status = ?", roleID, identity.StatusActive).
		Find(&moduleModels).Error; err != nil {
		return nil, err
	}
	modules := make([]identity.Module, len(moduleModels))
	for i := range moduleModels {
		modules[i] = *moduleModels[i].ToDomain()
	}
	return modules, nil
}

// ReplaceGrants replaces the role's grants transactionally
func (r *GormRoleModuleRepository) ReplaceGrants(ctx context.Context, roleID uuid.UUID, moduleIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RoleModuleModel{}).Error; err != nil {
			return err
		}
		if len(moduleIDs) == 0 {
			return nil
		}
		grants := make([]models.RoleModuleModel, len(moduleIDs))
		for i, moduleID := range moduleIDs {
			grants[i] = *models.RoleModuleModelFromDomain(identity.NewRoleModule(roleID, moduleID))
		}
		return tx.Create(&grants).Error
	})
}

var _ identity.RoleModuleRepository = (*GormRoleModuleRepository)(nil)
