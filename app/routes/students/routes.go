package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentsRoutes registers the students CRUD API. The db handle may be
// nil until the operator completes setup; handlers report that as a 400.
func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/students")
	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetStudentByIDAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateStudentAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateStudentAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteStudentAPI(c, db) })
}
