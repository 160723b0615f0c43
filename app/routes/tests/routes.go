package tests

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupTestsRoutes registers the test results API.
func SetupTestsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/tests")
	api.Get("/", func(c *fiber.Ctx) error { return GetTestsAPI(c, db) })
	api.Get("/student/:id", func(c *fiber.Ctx) error { return GetStudentTestsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateTestAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteTestAPI(c, db) })
}
