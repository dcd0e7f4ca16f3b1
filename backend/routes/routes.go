package routes

import (
	"log"

	"coursecatalog/backend/config"
	"coursecatalog/backend/controllers"
	"coursecatalog/backend/metrics"
	"coursecatalog/backend/middleware"
	"coursecatalog/backend/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func SetupRoutes(app *fiber.App, s *store.CourseStore, cfg *config.Config, logger *log.Logger, m *metrics.Metrics) {
	// Seed the gauges before the first scrape
	m.Observe(s.Statistics(), s.SelectionSize())
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	adminMiddleware := middleware.AdminMiddleware(cfg)

	// Auth routes
	authController := controllers.NewAuthController(cfg, logger)
	app.Post("/api/auth/login", authController.Login)

	// Catalog option lists
	catalogController := controllers.NewCatalogController()
	catalog := app.Group("/api/catalog")
	catalog.Get("/", catalogController.GetCatalog)
	catalog.Get("/instructors", catalogController.GetInstructors)
	catalog.Get("/suggestions", catalogController.GetSuggestions)

	// Courses routes; static paths go before /:id
	coursesController := controllers.NewCoursesController(s, cfg, logger, m)
	courses := app.Group("/api/courses")
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/stats", coursesController.GetStatistics)
	courses.Get("/export", coursesController.ExportCourses)
	courses.Post("/bulk-delete", adminMiddleware, coursesController.BulkDelete)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Post("/", adminMiddleware, coursesController.CreateCourse)
	courses.Put("/:id", adminMiddleware, coursesController.UpdateCourse)
	courses.Delete("/:id", adminMiddleware, coursesController.DeleteCourse)

	// Bulk selection
	selectionController := controllers.NewSelectionController(s, m)
	selection := app.Group("/api/selection")
	selection.Get("/", selectionController.GetSelection)
	selection.Post("/all", selectionController.SelectAll)
	selection.Delete("/", selectionController.ClearSelection)
	selection.Put("/:id", selectionController.ToggleSelection)

	// UI preferences
	themeController := controllers.NewThemeController(cfg.DefaultTheme)
	app.Get("/api/ui/theme", themeController.GetTheme)
	app.Post("/api/ui/theme/toggle", themeController.ToggleTheme)
}
