package setup

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/config"
)

// SetupSetupRoutes registers the setup wizard page and the setup API.
// Every handler resolves credentials per request (body first, stored config
// second) and opens its own short-lived connection.
func SetupSetupRoutes(app *fiber.App, cfg *config.Config) {
	app.Get("/setup", SetupPage)

	api := app.Group("/api/setup")
	api.Post("/schema", CreateSchemaAPI(cfg))
	api.Post("/test-database", TestDatabaseAPI(cfg))
	api.Post("/test-qdrant", TestQdrantAPI(cfg))
	api.Post("/sample-data/students", SeedStudentsAPI(cfg))
	api.Post("/sample-data/payments", SeedPaymentsAPI(cfg))
	api.Post("/sample-data/tests", SeedTestsAPI(cfg))
}

// SetupPage renders the operator-facing setup wizard.
func SetupPage(c *fiber.Ctx) error {
	return c.Render("setup/index", fiber.Map{
		"Title":       "Setup - Student Tracker",
		"CurrentPage": "setup",
	})
}
