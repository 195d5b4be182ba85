package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/infrastructure/persistence/models"
)

// GormUserRepository implements identity.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a user and its role assignments
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRoleModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.UserModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsername finds a user by username, case-insensitively
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns users matching the filter with pagination
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, int64, error) {
	filter = filter.Normalize()

	var userModels []models.UserModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.UserModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("username LIKE ? OR email LIKE ? OR full_name LIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, UserSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	if err := query.
		Order(sortField + " " + sortOrder).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]identity.User, len(userModels))
	for i := range userModels {
		users[i] = *userModels[i].ToDomain()
	}
	return users, total, nil
}

// FindActiveRoleAssignment returns the user's active role assignment,
// or (nil, nil) when none exists
func (r *GormUserRepository) FindActiveRoleAssignment(ctx context.Context, userID uuid.UUID) (*identity.UserRole, error) {
	var model models.UserRoleModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, identity.StatusActive).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// ReplaceRoleAssignments replaces the user's assignments transactionally
func (r *GormUserRepository) ReplaceRoleAssignments(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRoleModel{}).Error; err != nil {
			return err
		}
		if len(roleIDs) == 0 {
			return nil
		}
		assignments := make([]models.UserRoleModel, len(roleIDs))
		for i, roleID := range roleIDs {
			assignments[i] = *models.UserRoleModelFromDomain(identity.NewUserRole(userID, roleID))
		}
		return tx.Create(&assignments).Error
	})
}

var _ identity.UserRepository = (*GormUserRepository)(nil)
