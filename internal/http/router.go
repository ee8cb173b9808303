package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/buffetops/buffet/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF protection for all form posts
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	funcMap := template.FuncMap{
		"subtract": func(a, b float64) float64 {
			return a - b
		},
	}

	// Load HTML templates with custom functions
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Session routes: login, register, logout
	authController := auth.NewAuthController(cfg.AuthService, cfg.SessionCodec, cfg.Guard)
	authController.RegisterRoutes(router)

	// Pages for any authenticated user
	dashboardController := NewDashboardController(cfg.LogsRepo)
	router.GET("/", cfg.Guard.RequireUser(), dashboardController.Page)

	logsController := NewLogsController(cfg.LogsRepo, cfg.ItemsRepo, cfg.PotsRepo)
	router.GET("/logs/new", cfg.Guard.RequireUser(), logsController.NewPage)
	router.POST("/logs", cfg.Guard.RequireUser(), logsController.Create)

	// Manager-only pages
	itemsController := NewItemsController(cfg.ItemsRepo)
	manager := router.Group("/", cfg.Guard.RequireManager())
	manager.GET("/items", itemsController.Page)
	manager.POST("/items", itemsController.Create)
	manager.POST("/items/:id", itemsController.Update)
	manager.POST("/items/:id/delete", itemsController.Delete)

	potsController := NewPotsController(cfg.PotsRepo)
	manager.GET("/pots", potsController.Page)
	manager.POST("/pots", potsController.Create)
	manager.POST("/pots/:id", potsController.Update)
	manager.POST("/pots/:id/delete", potsController.Delete)

	employeesController := NewEmployeesController(cfg.AuthService, cfg.UsersRepo)
	manager.GET("/employees", employeesController.Page)
	manager.POST("/employees", employeesController.Create)
	manager.POST("/employees/:id/delete", employeesController.Delete)

	// Health endpoint for deployments
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": cfg.Version, "commit": cfg.Commit})
	})

	return router
}
