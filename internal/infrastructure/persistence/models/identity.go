package models

import (
	"github.com/google/uuid"

	"github.com/ferrisys/backend/internal/domain/identity"
)

// UserModel is the GORM model for users
type UserModel struct {
	BaseModel
	Username     string `gorm:"size:100;not null;uniqueIndex"`
	Email        string `gorm:"size:255;index"`
	FullName     string `gorm:"size:255"`
	PasswordHash string `gorm:"size:255;not null"`
	Status       int    `gorm:"not null;default:1;index"`
}

// TableName specifies the table name
func (UserModel) TableName() string { return "users" }

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		PasswordHash: m.PasswordHash,
		Status:       m.Status,
	}
}

// UserModelFromDomain converts a domain user to the model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		Status:       u.Status,
	}
	m.FromDomain(u.BaseEntity)
	return m
}

// RoleModel is the GORM model for roles
type RoleModel struct {
	BaseModel
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"size:500"`
	Status      int    `gorm:"not null;default:1"`
}

// TableName specifies the table name
func (RoleModel) TableName() string { return "roles" }

// ToDomain converts the model to a domain role
func (m *RoleModel) ToDomain() *identity.Role {
	return &identity.Role{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Status:      m.Status,
	}
}

// RoleModelFromDomain converts a domain role to the model
func RoleModelFromDomain(r *identity.Role) *RoleModel {
	m := &RoleModel{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
	}
	m.FromDomain(r.BaseEntity)
	return m
}

// ModuleModel is the GORM model for the module registry
type ModuleModel struct {
	BaseModel
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"size:500"`
	Status      int    `gorm:"not null;default:1"`
}

// TableName specifies the table name
func (ModuleModel) TableName() string { return "modules" }

// ToDomain converts the model to a domain module
func (m *ModuleModel) ToDomain() *identity.Module {
	return &identity.Module{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Status:      m.Status,
	}
}

// ModuleModelFromDomain converts a domain module to the model
func ModuleModelFromDomain(mod *identity.Module) *ModuleModel {
	m := &ModuleModel{
		Name:        mod.Name,
		Description: mod.Description,
		Status:      mod.Status,
	}
	m.FromDomain(mod.BaseEntity)
	return m
}

// UserRoleModel is the GORM model for user-role assignments
type UserRoleModel struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status int       `gorm:"not null;default:1"`
}

// TableName specifies the table name
func (UserRoleModel) TableName() string { return "user_roles" }

// ToDomain converts the model to a domain assignment
func (m *UserRoleModel) ToDomain() *identity.UserRole {
	return &identity.UserRole{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		RoleID:     m.RoleID,
		Status:     m.Status,
	}
}

// UserRoleModelFromDomain converts a domain assignment to the model
func UserRoleModelFromDomain(a *identity.UserRole) *UserRoleModel {
	m := &UserRoleModel{
		UserID: a.UserID,
		RoleID: a.RoleID,
		Status: a.Status,
	}
	m.FromDomain(a.BaseEntity)
	return m
}

// RoleModuleModel is the GORM model for role-module grants
type RoleModuleModel struct {
	BaseModel
	RoleID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ModuleID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status   int       `gorm:"not null;default:1"`
}

// TableName specifies the table name
func (RoleModuleModel) TableName() string { return "role_modules" }

// ToDomain converts the model to a domain grant
func (m *RoleModuleModel) ToDomain() *identity.RoleModule {
	return &identity.RoleModule{
		BaseEntity: m.BaseModel.ToDomain(),
		RoleID:     m.RoleID,
		ModuleID:   m.ModuleID,
		Status:     m.Status,
	}
}

// RoleModuleModelFromDomain converts a domain grant to the model
func RoleModuleModelFromDomain(g *identity.RoleModule) *RoleModuleModel {
	m := &RoleModuleModel{
		RoleID:   g.RoleID,
		ModuleID: g.ModuleID,
		Status:   g.Status,
	}
	m.FromDomain(g.BaseEntity)
	return m
}
