package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/infrastructure/persistence/models"
)

// GormModuleRepository implements identity.ModuleRepository using GORM.
// Registry names may carry accents and punctuation, so normalized lookups
// compare in memory via the injected normalizer rather than in SQL.
type GormModuleRepository struct {
	db        *gorm.DB
	normalize func(string) string
}

// NewGormModuleRepository creates a new GormModuleRepository. The normalizer
// maps a raw module name to its canonical registry form.
func NewGormModuleRepository(db *gorm.DB, normalize func(string) string) *GormModuleRepository {
	return &GormModuleRepository{db: db, normalize: normalize}
}

// Create creates a new module
func (r *GormModuleRepository) Create(ctx context.Context, module *identity.Module) error {
	model := models.ModuleModelFromDomain(module)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing module
func (r *GormModuleRepository) Update(ctx context.Context, module *identity.Module) error {
	model := models.ModuleModelFromDomain(module)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a module along with its grants
func (r *GormModuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", id).Delete(&models.RoleModuleModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ModuleModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a module by ID
func (r *GormModuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Module, error) {
	var model models.ModuleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNormalizedName finds the module whose stored name normalizes to the
// given canonical form. Returns shared.ErrNotFound when no module matches.
func (r *GormModuleRepository) FindByNormalizedName(ctx context.Context, name string) (*identity.Module, error) {
	var moduleModels []models.ModuleModel
	if err := r.db.WithContext(ctx).Find(&moduleModels).Error; err != nil {
		return nil, err
	}
	want := r.normalize(name)
	for i := range moduleModels {
		if r.normalize(moduleModels[i].Name) == want {
			return moduleModels[i].ToDomain(), nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns all modules ordered by name
func (r *GormModuleRepository) FindAll(ctx context.Context) ([]identity.Module, error) {
	var moduleModels []models.ModuleModel
	if err := r.db.WithContext(ctx).Order("name").Find(&moduleModels).Error; err != nil {
		return nil, err
	}
	modules := make([]identity.Module, len(moduleModels))
	for i := range moduleModels {
		modules[i] = *moduleModels[i].ToDomain()
	}
	return modules, nil
}

var _ identity.ModuleRepository = (*GormModuleRepository)(nil)
