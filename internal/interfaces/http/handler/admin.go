package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appidentity "github.com/ferrisys/backend/internal/application/identity"
)

// AdminHandler serves the administrative surface: users, roles, the module
// registry, role grants and tenant licenses.
type AdminHandler struct {
	BaseHandler
	admin *appidentity.AdminService
}

// NewAdminHandler creates an admin handler
func NewAdminHandler(admin *appidentity.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListUsers returns users with pagination
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	users, total, err := h.admin.ListUsers(c.Request.Context(), filter)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, users, total, filter.Page, filter.PageSize)
}

// GetUser returns a single user
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.admin.GetUser(c.Request.Context(), id)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, user)
}

type createUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	FullName string `json:"full_name" binding:"max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// CreateUser creates an account
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid user payload")
		return
	}
	user, err := h.admin.CreateUser(c.Request.Context(), appidentity.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Created(c, user)
}

// DisableUser marks an account inactive
func (h *AdminHandler) DisableUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.DisableUser(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "User disabled"})
}

// DeleteUser removes an account
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteUser(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "User deleted"})
}

type assignRoleRequest struct {
	RoleID uuid.UUID `json:"role_id" binding:"required"`
}

// AssignRole gives a user its single active role
func (h *AdminHandler) AssignRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req assignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "role_id is required")
		return
	}
	if err := h.admin.AssignRole(c.Request.Context(), id, req.RoleID); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Role assigned"})
}

// ListRoles returns all roles
func (h *AdminHandler) ListRoles(c *gin.Context) {
	roles, err := h.admin.ListRoles(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, roles)
}

type saveRoleRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// CreateRole creates a role
func (h *AdminHandler) CreateRole(c *gin.Context) {
	var req saveRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid role payload")
		return
	}
	role, err := h.admin.CreateRole(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Created(c, role)
}

// DeleteRole removes a role
func (h *AdminHandler) DeleteRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteRole(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Role deleted"})
}

// ListModules returns the module registry
func (h *AdminHandler) ListModules(c *gin.Context) {
	modules, err := h.admin.ListModules(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, modules)
}

// CreateModule registers a module
func (h *AdminHandler) CreateModule(c *gin.Context) {
	var req saveRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid module payload")
		return
	}
	module, err := h.admin.CreateModule(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Created(c, module)
}

// DeleteModule removes a module
func (h *AdminHandler) DeleteModule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteModule(c.Request.Context(), id); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Module deleted"})
}

// RoleModules returns the modules granted to a role
func (h *AdminHandler) RoleModules(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	modules, err := h.admin.RoleModules(c.Request.Context(), id)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, modules)
}

type setRoleModulesRequest struct {
	ModuleIDs []uuid.UUID `json:"module_ids" binding:"required"`
}

// SetRoleModules replaces a role's module grants
func (h *AdminHandler) SetRoleModules(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req setRoleModulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "module_ids is required")
		return
	}
	if err := h.admin.SetRoleModules(c.Request.Context(), id, req.ModuleIDs); err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Grants updated"})
}

type saveLicenseRequest struct {
	TenantID  uuid.UUID  `json:"tenant_id" binding:"required"`
	ModuleID  uuid.UUID  `json:"module_id" binding:"required"`
	Enabled   bool       `json:"enabled"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// SaveLicense upserts a tenant's license for a module
func (h *AdminHandler) SaveLicense(c *gin.Context) {
	var req saveLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid license payload")
		return
	}
	license, err := h.admin.SaveLicense(c.Request.Context(), req.TenantID, req.ModuleID, req.Enabled, req.ExpiresAt)
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, license)
}

// ListLicenses returns all licenses
func (h *AdminHandler) ListLicenses(c *gin.Context) {
	licenses, err := h.admin.ListLicenses(c.Request.Context())
	if err != nil {
		h.DomainError(c, err)
		return
	}
	h.Success(c, licenses)
}
