package tests

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/database"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

func GetTestsAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	tests, err := database.GetAllTests(db, limit, offset)
	if err != nil {
		log.Printf("Failed to fetch tests: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tests: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"tests": tests,
		"count": len(tests),
	})
}

func GetStudentTestsAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	tests, err := database.GetTestsByStudent(db, c.Params("id"))
	if err != nil {
		log.Printf("Failed to fetch tests for student %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch tests: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"tests": tests,
		"count": len(tests),
	})
}

// CreateTestAPI inserts a test result. The percentage field in the request
// body is ignored; the store derives it from score and total_marks.
func CreateTestAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	var test models.Test
	if err := c.BodyParser(&test); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if test.StudentID == "" || test.Subject == "" {
		return c.Status(400).JSON(fiber.Map{"error": "student_id and subject are required"})
	}
	if test.TotalMarks <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "total_marks must be greater than zero"})
	}
	if test.Score < 0 || test.Score > test.TotalMarks {
		return c.Status(400).JSON(fiber.Map{"error": "score must be between 0 and total_marks"})
	}
	if test.Date.IsZero() {
		test.Date = time.Now()
	}
	if test.TestType == "" {
		test.TestType = models.TestQuiz
	}

	if err := database.CreateTest(db, &test); err != nil {
		log.Printf("Failed to create test: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create test: " + err.Error()})
	}

	return c.Status(201).JSON(test)
}

func DeleteTestAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	err := database.DeleteTest(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Test not found"})
	}
	if err != nil {
		log.Printf("Failed to delete test %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete test: " + err.Error()})
	}

	return c.SendStatus(204)
}

func databaseNotConfigured(c *fiber.Ctx) error {
	log.Println("Request rejected: database not configured")
	return c.Status(400).JSON(fiber.Map{
		"error": "Database not configured. Complete setup at /setup first.",
	})
}
