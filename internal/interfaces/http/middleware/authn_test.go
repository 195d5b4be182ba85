package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ferrisys/backend/internal/application/entitlement"
	"github.com/ferrisys/backend/internal/domain/identity"
	"github.com/ferrisys/backend/internal/domain/licensing"
	"github.com/ferrisys/backend/internal/domain/shared"
	"github.com/ferrisys/backend/internal/infrastructure/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUserRepo serves a single user plus its role assignment
type stubUserRepo struct {
	user        *identity.User
	assignment  *identity.UserRole
	err         error
	lookupCount int
}

func (r *stubUserRepo) Create(context.Context, *identity.User) error { return nil }
func (r *stubUserRepo) Update(context.Context, *identity.User) error { return nil }
func (r *stubUserRepo) Delete(context.Context, uuid.UUID) error      { return nil }

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	r.lookupCount++
	if r.err != nil {
		return nil, r.err
	}
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubUserRepo) FindAll(context.Context, shared.Filter) ([]identity.User, int64, error) {
	return nil, 0, nil
}

func (r *stubUserRepo) FindActiveRoleAssignment(context.Context, uuid.UUID) (*identity.UserRole, error) {
	return r.assignment, nil
}

func (r *stubUserRepo) ReplaceRoleAssignments(context.Context, uuid.UUID, []uuid.UUID) error {
	return nil
}

// stubRoleRepo serves a single role
type stubRoleRepo struct {
	role *identity.Role
}

func (r *stubRoleRepo) Create(context.Context, *identity.Role) error { return nil }
func (r *stubRoleRepo) Update(context.Context, *identity.Role) error { return nil }
func (r *stubRoleRepo) Delete(context.Context, uuid.UUID) error      { return nil }

func (r *stubRoleRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.Role, error) {
	if r.role != nil && r.role.ID == id {
		return r.role, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubRoleRepo) FindAll(context.Context) ([]identity.Role, error) { return nil, nil }

// stubGrantRepo serves one role's grants
type stubGrantRepo struct {
	modules []identity.Module
}

func (r *stubGrantRepo) FindActiveGrants(context.Context, uuid.UUID) ([]identity.Module, error) {
	return r.modules, nil
}

func (r *stubGrantRepo) ReplaceGrants(context.Context, uuid.UUID, []uuid.UUID) error { return nil }

// stubModuleRepo resolves modules by normalized name
type stubModuleRepo struct {
	modules []identity.Module
}

func (r *stubModuleRepo) Create(context.Context, *identity.Module) error { return nil }
func (r *stubModuleRepo) Update(context.Context, *identity.Module) error { return nil }
func (r *stubModuleRepo) Delete(context.Context, uuid.UUID) error        { return nil }

func (r *stubModuleRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.Module, error) {
	for i := range r.modules {
		if r.modules[i].ID == id {
			return &r.modules[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubModuleRepo) FindByNormalizedName(_ context.Context, name string) (*identity.Module, error) {
	want := entitlement.ModuleName(name)
	for i := range r.modules {
		if entitlement.ModuleName(r.modules[i].Name) == want {
			return &r.modules[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubModuleRepo) FindAll(context.Context) ([]identity.Module, error) {
	return r.modules, nil
}

// stubLicenseRepo serves licenses by pair
type stubLicenseRepo struct {
	licenses []licensing.ModuleLicense
}

func (r *stubLicenseRepo) Save(context.Context, *licensing.ModuleLicense) error { return nil }

func (r *stubLicenseRepo) FindLicense(_ context.Context, tenantID, moduleID uuid.UUID) (*licensing.ModuleLicense, error) {
	for i := range r.licenses {
		if r.licenses[i].TenantID == tenantID && r.licenses[i].ModuleID == moduleID {
			return &r.licenses[i], nil
		}
	}
	return nil, nil
}

func (r *stubLicenseRepo) FindAll(context.Context) ([]licensing.ModuleLicense, error) {
	return r.licenses, nil
}

type allEnabled struct{}

func (allEnabled) Enabled(string) bool { return true }

type gateFixture struct {
	tokens    *auth.TokenService
	users     *stubUserRepo
	evaluator *entitlement.Evaluator
	composer  *entitlement.Composer
	blacklist auth.TokenBlacklist
}

func newGateFixture(roleName string, moduleNames ...string) *gateFixture {
	user, err := identity.NewUser("maria", "maria@example.com", "Maria", "password123")
	if err != nil {
		panic(err)
	}

	role := &identity.Role{
		BaseEntity: shared.NewBaseEntity(),
		Name:       roleName,
		Status:     identity.StatusActive,
	}

	modules := make([]identity.Module, len(moduleNames))
	for i, name := range moduleNames {
		modules[i] = identity.Module{
			BaseEntity: shared.NewBaseEntity(),
			Name:       name,
			Status:     identity.StatusActive,
		}
	}

	users := &stubUserRepo{
		user:       user,
		assignment: identity.NewUserRole(user.ID, role.ID),
	}
	evaluator := entitlement.NewEvaluator(
		&stubModuleRepo{modules: modules},
		&stubLicenseRepo{},
		allEnabled{},
		nil,
	)
	composer := entitlement.NewComposer(
		users,
		&stubRoleRepo{role: role},
		&stubGrantRepo{modules: modules},
		evaluator,
		nil,
	)

	return &gateFixture{
		tokens:    auth.NewTokenService("test-secret-key-that-is-long-enough", time.Hour, "test"),
		users:     users,
		evaluator: evaluator,
		composer:  composer,
	}
}

func (f *gateFixture) router(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	cfg := AuthenticationConfig{
		Tokens:    f.tokens,
		Users:     f.users,
		Composer:  f.composer,
		Blacklist: f.blacklist,
		Logger:    zap.NewNop(),
	}
	handlers := append([]gin.HandlerFunc{cfg.Middleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		if authn, ok := GetAuthentication(c); ok {
			c.JSON(http.StatusOK, gin.H{"username": authn.Username, "authorities": authn.Authorities.Values()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
	})
	r.Handle(http.MethodGet, "/resource", handlers...)
	r.Handle(http.MethodOptions, "/resource", handlers...)
	return r
}

func (f *gateFixture) token(t *testing.T) string {
	t.Helper()
	token, err := f.tokens.Generate(f.users.user.ID, f.users.user.Username)
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGatePassThroughWithoutCredentials(t *testing.T) {
	f := newGateFixture("ADMIN")
	r := f.router()

	t.Run("no header", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/resource", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "anonymous")
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/resource", "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "anonymous")
	})

	t.Run("preflight skips validation entirely", func(t *testing.T) {
		w := doRequest(r, http.MethodOptions, "/resource", "Bearer garbage")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGateAuthenticatesValidToken(t *testing.T) {
	f := newGateFixture("ADMIN", "Core De Autenticación")
	w := doRequest(f.router(), http.MethodGet, "/resource", "Bearer "+f.token(t))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"maria"`)
	assert.Contains(t, w.Body.String(), "ROLE_ADMIN")
	assert.Contains(t, w.Body.String(), "MODULE_CORE_DE_AUTENTICACION")
}

func TestGateAttachIsIdempotent(t *testing.T) {
	f := newGateFixture("ADMIN")
	cfg := AuthenticationConfig{
		Tokens:   f.tokens,
		Users:    f.users,
		Composer: f.composer,
		Logger:   zap.NewNop(),
	}

	// Mounted twice, as when a group repeats the gate on top of the
	// engine-level instance. The second pass must reuse the attached
	// context instead of resolving the principal again.
	r := gin.New()
	r.GET("/resource", cfg.Middleware(), cfg.Middleware(), func(c *gin.Context) {
		authn, ok := GetAuthentication(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": authn.Username})
	})

	w := doRequest(r, http.MethodGet, "/resource", "Bearer "+f.token(t))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"maria"`)
	assert.Equal(t, 1, f.users.lookupCount)
}

func TestGateRejectsExpiredToken(t *testing.T) {
	f := newGateFixture("ADMIN")
	f.tokens.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	token := f.token(t)
	f.tokens.WithClock(time.Now)

	w := doRequest(f.router(), http.MethodGet, "/resource", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestGateRejectsMalformedToken(t *testing.T) {
	f := newGateFixture("ADMIN")
	w := doRequest(f.router(), http.MethodGet, "/resource", "Bearer not.a.token")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestGateRejectsUnknownPrincipal(t *testing.T) {
	f := newGateFixture("ADMIN")
	token := f.token(t)
	f.users.user = nil

	w := doRequest(f.router(), http.MethodGet, "/resource", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication failed")
}

func TestGateRejectsDisabledPrincipal(t *testing.T) {
	f := newGateFixture("ADMIN")
	f.users.user.Disable()

	w := doRequest(f.router(), http.MethodGet, "/resource", "Bearer "+f.token(t))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateStoreFailureIsServerError(t *testing.T) {
	f := newGateFixture("ADMIN")
	token := f.token(t)
	f.users.err = errors.New("connection refused")

	w := doRequest(f.router(), http.MethodGet, "/resource", "Bearer "+token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGateRejectsRevokedToken(t *testing.T) {
	f := newGateFixture("ADMIN")
	blacklist := auth.NewInMemoryTokenBlacklist()
	f.blacklist = blacklist

	token := f.token(t)
	claims, err := f.tokens.Validate(token)
	require.NoError(t, err)
	require.NoError(t, blacklist.Revoke(context.Background(), claims.ID, time.Hour))

	w := doRequest(f.router(), http.MethodGet, "/resource", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")
}
