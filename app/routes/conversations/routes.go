package conversations

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/ai"
)

// SetupConversationsRoutes registers the chat log API. The AI provider may
// be nil when transcription credentials are not configured; only the audio
// route needs it.
func SetupConversationsRoutes(app *fiber.App, db *sql.DB, provider ai.Provider, uploadDir string) {
	api := app.Group("/api/conversations")
	api.Get("/", func(c *fiber.Ctx) error { return GetConversationsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateConversationAPI(c, db) })
	api.Post("/audio", func(c *fiber.Ctx) error { return CreateAudioConversationAPI(c, db, provider, uploadDir) })
}
