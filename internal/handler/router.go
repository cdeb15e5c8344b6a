package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"housnkuh/internal/handler/api"
	"housnkuh/internal/handler/middleware"
	"housnkuh/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	vendorHandler *api.VendorHandler,
	unitHandler *api.UnitHandler,
	contractHandler *api.ContractHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, vendorHandler, unitHandler, contractHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	vendorHandler *api.VendorHandler,
	unitHandler *api.UnitHandler,
	contractHandler *api.ContractHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		vendors := apiGroup.Group("/vendors")
		{
			addRoutes(vendors, []route{
				{Method: http.MethodPost, Path: "/register", Handler: vendorHandler.Register},
				{Method: http.MethodPost, Path: "/confirm", Handler: vendorHandler.Confirm},
			})

			vendorRequired := vendors.Group("")
			vendorRequired.Use(authMiddleware.RequireAuth())
			addRoutes(vendorRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: vendorHandler.GetProfile},
			})
		}

		units := apiGroup.Group("/units")
		{
			addRoutes(units, []route{
				{Method: http.MethodGet, Path: "", Handler: unitHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: unitHandler.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: unitHandler.CheckAvailability},
			})
		}

		contracts := apiGroup.Group("/contracts")
		contracts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(contracts, []route{
				{Method: http.MethodGet, Path: "", Handler: contractHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: contractHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: contractHandler.Cancel},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: adminHandler.ListPendingBookings},
				{Method: http.MethodPost, Path: "/bookings/:vendorId/approve", Handler: adminHandler.ApproveBooking},
				{Method: http.MethodGet, Path: "/contracts", Handler: adminHandler.ListContracts},
				{Method: http.MethodPost, Path: "/units", Handler: adminHandler.CreateUnit},
				{Method: http.MethodPatch, Path: "/units/:id", Handler: adminHandler.UpdateUnit},
				{Method: http.MethodGet, Path: "/settings", Handler: adminHandler.GetSettings},
				{Method: http.MethodPut, Path: "/settings", Handler: adminHandler.UpdateSettings},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
