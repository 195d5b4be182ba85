package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ferrisys/backend/internal/application/entitlement"
	"github.com/ferrisys/backend/internal/interfaces/http/handler"
	"github.com/ferrisys/backend/internal/interfaces/http/middleware"
)

// Module slugs used to guard the business route groups. They resolve
// against the seeded module registry after normalization.
const (
	SlugAutenticacion = "autenticacion"
	SlugInventario    = "inventario"
	SlugClientes      = "clientes"
	SlugProveedores   = "proveedores"
	SlugCompras       = "compras"
	SlugCotizaciones  = "cotizaciones"
)

// Handlers bundles every HTTP handler the API exposes
type Handlers struct {
	Auth      *handler.AuthHandler
	Admin     *handler.AdminHandler
	Partner   *handler.PartnerHandler
	Inventory *handler.InventoryHandler
	Trade     *handler.TradeHandler
}

// Build assembles the versioned API: public auth endpoints, the admin
// surface behind the authentication module, and one guarded group per
// business module
func Build(engine *gin.Engine, h Handlers, evaluator *entitlement.Evaluator) *Router {
	r := NewRouter(engine, WithAPIVersion("v1"))

	authRoutes := NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", h.Auth.Login)
	authRoutes.POST("/register", h.Auth.Register)
	authRoutes.POST("/logout", h.Auth.Logout)

	// Administration rides on the authentication module: holders of its
	// module authority or ROLE_ADMIN get through, subject to entitlement
	adminRoutes := NewDomainGroup("admin", "/admin")
	adminRoutes.Use(middleware.RequireModule(evaluator, SlugAutenticacion))
	adminRoutes.GET("/users", h.Admin.ListUsers)
	adminRoutes.POST("/users", h.Admin.CreateUser)
	adminRoutes.GET("/users/:id", h.Admin.GetUser)
	adminRoutes.PUT("/users/:id/disable", h.Admin.DisableUser)
	adminRoutes.PUT("/users/:id/role", h.Admin.AssignRole)
	// Hard deletes stay admin-only even for module holders
	adminRoutes.DELETE("/users/:id", middleware.RequireAuthority(entitlement.AuthorityAdmin), h.Admin.DeleteUser)
	adminRoutes.GET("/roles", h.Admin.ListRoles)
	adminRoutes.POST("/roles", h.Admin.CreateRole)
	adminRoutes.DELETE("/roles/:id", middleware.RequireAuthority(entitlement.AuthorityAdmin), h.Admin.DeleteRole)
	adminRoutes.GET("/roles/:id/modules", h.Admin.RoleModules)
	adminRoutes.PUT("/roles/:id/modules", h.Admin.SetRoleModules)
	adminRoutes.GET("/modules", h.Admin.ListModules)
	adminRoutes.POST("/modules", h.Admin.CreateModule)
	adminRoutes.DELETE("/modules/:id", middleware.RequireAuthority(entitlement.AuthorityAdmin), h.Admin.DeleteModule)
	adminRoutes.GET("/licenses", h.Admin.ListLicenses)
	adminRoutes.POST("/licenses", h.Admin.SaveLicense)

	clientRoutes := NewDomainGroup("clients", "/clients")
	clientRoutes.Use(middleware.RequireModule(evaluator, SlugClientes))
	clientRoutes.POST("", h.Partner.SaveClient)
	clientRoutes.GET("", h.Partner.ListClients)
	clientRoutes.PUT("/:id/disable", h.Partner.DisableClient)

	providerRoutes := NewDomainGroup("providers", "/providers")
	providerRoutes.Use(middleware.RequireModule(evaluator, SlugProveedores))
	providerRoutes.POST("", h.Partner.SaveProvider)
	providerRoutes.GET("", h.Partner.ListProviders)
	providerRoutes.PUT("/:id/disable", h.Partner.DisableProvider)

	inventoryRoutes := NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.Use(middleware.RequireModule(evaluator, SlugInventario))
	inventoryRoutes.POST("/categories", h.Inventory.SaveCategory)
	inventoryRoutes.GET("/categories", h.Inventory.ListCategories)
	inventoryRoutes.PUT("/categories/:id/disable", h.Inventory.DisableCategory)
	inventoryRoutes.POST("/products", h.Inventory.SaveProduct)
	inventoryRoutes.GET("/products", h.Inventory.ListProducts)
	inventoryRoutes.PUT("/products/:id/disable", h.Inventory.DisableProduct)

	purchaseRoutes := NewDomainGroup("purchases", "/purchases")
	purchaseRoutes.Use(middleware.RequireModule(evaluator, SlugCompras))
	purchaseRoutes.POST("", h.Trade.SavePurchase)
	purchaseRoutes.GET("", h.Trade.ListPurchases)
	purchaseRoutes.PUT("/:id/disable", h.Trade.DisablePurchase)

	quoteRoutes := NewDomainGroup("quotes", "/quotes")
	quoteRoutes.Use(middleware.RequireModule(evaluator, SlugCotizaciones))
	quoteRoutes.POST("", h.Trade.SaveQuote)
	quoteRoutes.GET("", h.Trade.ListQuotes)
	quoteRoutes.PUT("/:id/disable", h.Trade.DisableQuote)

	r.Register(authRoutes).
		Register(adminRoutes).
		Register(clientRoutes).
		Register(providerRoutes).
		Register(inventoryRoutes).
		Register(purchaseRoutes).
		Register(quoteRoutes)

	r.Setup()
	return r
}
