package web

import (
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mehran282/off-board-v1/config"
	"github.com/mehran282/off-board-v1/web/handlers"
	"github.com/mehran282/off-board-v1/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates the Fiber server around the catalog handlers. rdb may
// be nil, which disables the response cache.
func NewServer(cfg *config.Config, h *handlers.Handler, rdb *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		AppName: "off-board catalog API",
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
	app.Use(middleware.SQLDebug(h.Queries))

	setupRoutes(app, cfg, h, rdb)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the Fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, cfg *config.Config, h *handlers.Handler, rdb *redis.Client) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Debug endpoints stay uncached
	api.Get("/debug/sql", h.GetSQLLogs)
	api.Delete("/debug/sql", h.ClearSQLLogs)

	cached := middleware.ResponseCache(rdb, cfg.Redis.CacheTTL)

	api.Get("/offers", cached, h.OfferList)

	api.Get("/flyers", cached, h.FlyerList)
	api.Get("/flyers/:id", cached, h.FlyerDetail)

	// Specific retailer subroutes before /:id
	api.Get("/retailers/:id/stores", cached, h.RetailerStores)
	api.Get("/retailers", cached, h.RetailerList)
	api.Get("/retailers/:id", cached, h.RetailerDetail)

	api.Get("/products", cached, h.ProductList)

	api.Get("/categories", cached, h.CategoryFacets)
	api.Get("/highlights", cached, h.Highlights)
	api.Get("/search", cached, h.SearchOffers)
}
