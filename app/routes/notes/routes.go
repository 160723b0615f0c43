package notes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/ai"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/config"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/qdrant"
)

// SetupNotesRoutes registers the unstructured student-notes API backed by
// the vector collection. Client and provider may be nil until the operator
// configures Qdrant and an AI provider.
func SetupNotesRoutes(app *fiber.App, cfg *config.Config, client *qdrant.Client, provider ai.Provider) {
	api := app.Group("/api/notes")
	api.Post("/", func(c *fiber.Ctx) error { return CreateNoteAPI(c, cfg, client, provider) })
	api.Post("/search", func(c *fiber.Ctx) error { return SearchNotesAPI(c, cfg, client, provider) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteNoteAPI(c, cfg, client) })
}
