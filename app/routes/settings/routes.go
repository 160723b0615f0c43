package settings

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupSettingsRoutes registers the persisted user-settings API.
func SetupSettingsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/settings")
	api.Get("/:userId", func(c *fiber.Ctx) error { return GetUserSettingsAPI(c, db) })
	api.Get("/:userId/:key", func(c *fiber.Ctx) error { return GetSettingAPI(c, db) })
	api.Put("/:userId/:key", func(c *fiber.Ctx) error { return PutSettingAPI(c, db) })
	api.Delete("/:userId/:key", func(c *fiber.Ctx) error { return DeleteSettingAPI(c, db) })
}
