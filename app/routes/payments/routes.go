package payments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentsRoutes registers the payments API.
func SetupPaymentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/payments")
	api.Get("/", func(c *fiber.Ctx) error { return GetPaymentsAPI(c, db) })
	api.Get("/student/:id", func(c *fiber.Ctx) error { return GetStudentPaymentsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreatePaymentAPI(c, db) })
	api.Put("/:id/status", func(c *fiber.Ctx) error { return UpdatePaymentStatusAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeletePaymentAPI(c, db) })
}
