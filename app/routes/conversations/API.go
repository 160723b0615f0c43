package conversations

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/ai"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/database"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

func GetConversationsAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	limit := c.QueryInt("limit", 50)
	conversations, err := database.GetRecentConversations(db, limit)
	if err != nil {
		log.Printf("Failed to fetch conversations: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch conversations: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"conversations": conversations,
		"count":         len(conversations),
	})
}

// CreateConversationAPI logs a text query/response pair.
func CreateConversationAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	var conv models.Conversation
	if err := c.BodyParser(&conv); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if conv.Query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "query is required"})
	}
	conv.QueryType = models.QueryText
	conv.AudioFilePath = nil

	if err := database.CreateConversation(db, &conv); err != nil {
		log.Printf("Failed to log conversation: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log conversation: " + err.Error()})
	}

	return c.Status(201).JSON(conv)
}

// CreateAudioConversationAPI receives a recorded audio blob, stores it under
// the upload directory, transcribes it with the configured provider, and logs
// the conversation with the measured processing time.
func CreateAudioConversationAPI(c *fiber.Ctx, db *sql.DB, provider ai.Provider, uploadDir string) error {
	if db == nil {
		return databaseNotConfigured(c)
	}
	if provider == nil {
		log.Println("Audio query rejected: AI provider not configured")
		return c.Status(400).JSON(fiber.Map{
			"error": "AI provider not configured. Set AI_PROVIDER and the matching API key.",
		})
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "audio file is required"})
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Printf("Failed to prepare upload directory: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store audio: " + err.Error()})
	}

	filename := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))
	audioPath := filepath.Join(uploadDir, filename)
	if err := c.SaveFile(fileHeader, audioPath); err != nil {
		log.Printf("Failed to save audio file: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store audio: " + err.Error()})
	}

	audioFile, err := os.Open(audioPath)
	if err != nil {
		log.Printf("Failed to reopen audio file: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read audio: " + err.Error()})
	}
	defer audioFile.Close()

	started := time.Now()
	transcript, err := provider.Transcribe(c.Context(), audioFile, fileHeader.Filename)
	if err != nil {
		log.Printf("Transcription failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Transcription failed: " + err.Error()})
	}
	processingTime := time.Since(started).Seconds()

	conv := models.Conversation{
		Query:          transcript,
		Response:       c.FormValue("response"),
		AudioFilePath:  &audioPath,
		QueryType:      models.QueryAudio,
		ProcessingTime: processingTime,
	}
	if err := database.CreateConversation(db, &conv); err != nil {
		log.Printf("Failed to log audio conversation: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log conversation: " + err.Error()})
	}

	return c.Status(201).JSON(conv)
}

func databaseNotConfigured(c *fiber.Ctx) error {
	log.Println("Request rejected: database not configured")
	return c.Status(400).JSON(fiber.Map{
		"error": "Database not configured. Complete setup at /setup first.",
	})
}
