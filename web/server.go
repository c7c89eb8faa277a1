// Package web wires the fiber application: middleware, routes and the JSON
// error handler.
package web

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/stockmaster/auth"
	"github.com/stockmaster/stock"
	"github.com/stockmaster/web/handlers"
	"github.com/stockmaster/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server over the stock engine.
func NewServer(engine *stock.Engine, jwtSecret string) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// Log error details to console
			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	h := handlers.New(engine, jwtSecret)
	setupRoutes(app, h, engine, jwtSecret)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler, engine *stock.Engine, jwtSecret string) {
	app.Post("/login", h.Login)

	api := app.Group("/api", middleware.RequireAuth(jwtSecret, engine))
	api.Get("/me", h.Me)

	// Product management
	products := api.Group("/products")
	products.Get("/", middleware.RequirePermission(auth.ActionViewProducts), h.ProductList)
	products.Get("/:id", middleware.RequirePermission(auth.ActionViewProducts), h.ProductView)
	products.Post("/", middleware.RequirePermission(auth.ActionManageProducts), h.ProductCreate)
	products.Put("/:id", middleware.RequirePermission(auth.ActionManageProducts), h.ProductUpdate)
	products.Delete("/:id", middleware.RequirePermission(auth.ActionManageProducts), h.ProductDelete)

	// Category management
	categories := api.Group("/categories")
	categories.Get("/", middleware.RequirePermission(auth.ActionViewCategories), h.CategoryList)
	categories.Post("/", middleware.RequirePermission(auth.ActionManageCategories), h.CategoryCreate)
	categories.Put("/:id", middleware.RequirePermission(auth.ActionManageCategories), h.CategoryUpdate)
	categories.Delete("/:id", middleware.RequirePermission(auth.ActionManageCategories), h.CategoryDelete)

	// Supplier management. Listing reuses the product view permission:
	// supplier names back the product views, so whoever sees products
	// sees who supplies them.
	suppliers := api.Group("/suppliers")
	suppliers.Get("/", middleware.RequirePermission(auth.ActionViewProducts), h.SupplierList)
	suppliers.Post("/", middleware.RequirePermission(auth.ActionManageSuppliers), h.SupplierCreate)
	suppliers.Put("/:id", middleware.RequirePermission(auth.ActionManageSuppliers), h.SupplierUpdate)
	suppliers.Delete("/:id", middleware.RequirePermission(auth.ActionManageSuppliers), h.SupplierDelete)

	// Stock movements: append-only, no update or delete routes
	transactions := api.Group("/transactions")
	transactions.Get("/", middleware.RequirePermission(auth.ActionViewTransactions), h.TransactionList)
	transactions.Post("/", middleware.RequirePermission(auth.ActionAddTransactions), h.TransactionCreate)

	// User management
	users := api.Group("/users", middleware.RequirePermission(auth.ActionManageUsers))
	users.Get("/", h.UserList)
	users.Post("/", h.UserCreate)
	users.Put("/:id", h.UserUpdate)
	users.Delete("/:id", h.UserDelete)

	// Reports and statistics
	reports := api.Group("/reports", middleware.RequirePermission(auth.ActionViewTransactions))
	reports.Get("/overview", h.ReportsOverview)
	reports.Get("/low-stock", h.LowStockReport)
	reports.Get("/by-category", h.ByCategoryReport)
	reports.Get("/daily", h.DailyReport)
	reports.Get("/annual", h.AnnualReport)

	// Settings and data management
	settings := api.Group("/settings", middleware.RequirePermission(auth.ActionManageSettings))
	settings.Get("/", h.SettingsView)
	settings.Put("/", h.SettingsUpdate)
	settings.Get("/export", h.ExportData)
	settings.Post("/import", h.ImportData)
	settings.Post("/reset", h.ResetData)
}
