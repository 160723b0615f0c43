package notes

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/ai"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/config"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/qdrant"
)

// CreateNoteAPI embeds the note content and upserts it into the vector
// collection. The point id is derived from student, content and date, so
// submitting the same note twice overwrites instead of duplicating.
func CreateNoteAPI(c *fiber.Ctx, cfg *config.Config, client *qdrant.Client, provider ai.Provider) error {
	if resp := checkVectorDeps(c, client, provider); resp != nil {
		return resp
	}

	var note models.Note
	if err := c.BodyParser(&note); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if note.StudentID == "" || note.Content == "" {
		return c.Status(400).JSON(fiber.Map{"error": "student_id and content are required"})
	}
	if note.ContentType == "" {
		note.ContentType = models.ContentNote
	}
	if !validContentType(note.ContentType) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid content_type"})
	}
	if note.Date.IsZero() {
		note.Date = time.Now()
	}

	vector, err := provider.Embed(c.Context(), note.Content)
	if err != nil {
		log.Printf("Failed to embed note: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to embed note: " + err.Error()})
	}

	note.ID = qdrant.DeterministicPointID(fmt.Sprintf(
		"%s|%s|%s", note.StudentID, note.Content, note.Date.Format("2006-01-02"),
	))

	payload := map[string]interface{}{
		"student_id":   note.StudentID,
		"content":      note.Content,
		"content_type": string(note.ContentType),
		"date":         note.Date.Format(time.RFC3339),
	}
	for k, v := range note.Metadata {
		payload[k] = v
	}

	err = client.UpsertPoints(c.Context(), cfg.Qdrant.CollectionName, []qdrant.Point{
		{ID: note.ID, Vector: vector, Payload: payload},
	})
	if err != nil {
		log.Printf("Failed to store note: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store note: " + err.Error()})
	}

	return c.Status(201).JSON(note)
}

// SearchRequest is the /api/notes/search body.
type SearchRequest struct {
	Query     string `json:"query"`
	StudentID string `json:"student_id"`
	Limit     int    `json:"limit"`
}

// SearchNotesAPI embeds the query text and runs a similarity search,
// optionally filtered to one student.
func SearchNotesAPI(c *fiber.Ctx, cfg *config.Config, client *qdrant.Client, provider ai.Provider) error {
	if resp := checkVectorDeps(c, client, provider); resp != nil {
		return resp
	}

	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "query is required"})
	}

	vector, err := provider.Embed(c.Context(), req.Query)
	if err != nil {
		log.Printf("Failed to embed search query: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to embed query: " + err.Error()})
	}

	var filter map[string]interface{}
	if req.StudentID != "" {
		filter = map[string]interface{}{
			"must": []map[string]interface{}{
				{"key": "student_id", "match": map[string]interface{}{"value": req.StudentID}},
			},
		}
	}

	results, err := client.SearchPoints(c.Context(), cfg.Qdrant.CollectionName, vector, req.Limit, filter)
	if err != nil {
		log.Printf("Note search failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Search failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

func DeleteNoteAPI(c *fiber.Ctx, cfg *config.Config, client *qdrant.Client) error {
	if client == nil {
		return vectorStoreNotConfigured(c)
	}

	err := client.DeletePoints(c.Context(), cfg.Qdrant.CollectionName, []string{c.Params("id")})
	if err != nil {
		log.Printf("Failed to delete note %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete note: " + err.Error()})
	}

	return c.SendStatus(204)
}

func checkVectorDeps(c *fiber.Ctx, client *qdrant.Client, provider ai.Provider) error {
	if client == nil {
		return vectorStoreNotConfigured(c)
	}
	if provider == nil {
		log.Println("Request rejected: AI provider not configured")
		return c.Status(400).JSON(fiber.Map{
			"error": "AI provider not configured. Set AI_PROVIDER and the matching API key.",
		})
	}
	return nil
}

func vectorStoreNotConfigured(c *fiber.Ctx) error {
	log.Println("Request rejected: vector store not configured")
	return c.Status(400).JSON(fiber.Map{
		"error": "Vector store not configured. Set QDRANT_URL or complete setup at /setup.",
	})
}

func validContentType(ct models.ContentType) bool {
	for _, valid := range models.ContentTypes {
		if ct == valid {
			return true
		}
	}
	return false
}
