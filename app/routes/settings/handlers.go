package settings

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/database"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

func GetUserSettingsAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	configs, err := database.GetAppConfigsForUser(db, c.Params("userId"))
	if err != nil {
		log.Printf("Failed to load settings for %s: %v", c.Params("userId"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load settings: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"settings": configs,
		"count":    len(configs),
	})
}

func GetSettingAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	cfg, err := database.GetAppConfig(db, c.Params("userId"), c.Params("key"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Setting not found"})
	}
	if err != nil {
		log.Printf("Failed to load setting %s/%s: %v", c.Params("userId"), c.Params("key"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load setting: " + err.Error()})
	}

	return c.JSON(cfg)
}

func PutSettingAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	var body struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	cfg := &models.AppConfig{
		UserID: c.Params("userId"),
		Key:    c.Params("key"),
		Value:  body.Value,
	}
	if err := database.UpsertAppConfig(db, cfg); err != nil {
		log.Printf("Failed to save setting %s/%s: %v", cfg.UserID, cfg.Key, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save setting: " + err.Error()})
	}

	return c.JSON(cfg)
}

func DeleteSettingAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	err := database.DeleteAppConfig(db, c.Params("userId"), c.Params("key"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Setting not found"})
	}
	if err != nil {
		log.Printf("Failed to delete setting %s/%s: %v", c.Params("userId"), c.Params("key"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete setting: " + err.Error()})
	}

	return c.SendStatus(204)
}

func databaseNotConfigured(c *fiber.Ctx) error {
	log.Println("Request rejected: database not configured")
	return c.Status(400).JSON(fiber.Map{
		"error": "Database not configured. Complete setup at /setup first.",
	})
}
