package students

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/database"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	students, err := database.GetAllStudents(db)
	if err != nil {
		log.Printf("Failed to fetch students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		log.Printf("Failed to fetch student %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student: " + err.Error()})
	}

	return c.JSON(student)
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if student.Name == "" || student.Class == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name and class are required"})
	}

	if err := database.CreateStudent(db, &student); err != nil {
		log.Printf("Failed to create student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student: " + err.Error()})
	}

	return c.Status(201).JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	student.ID = c.Params("id")

	err := database.UpdateStudent(db, &student)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		log.Printf("Failed to update student %s: %v", student.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student: " + err.Error()})
	}

	return c.JSON(student)
}

// DeleteStudentAPI removes a student; the schema cascades the delete to the
// student's payments and tests.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	err := database.DeleteStudent(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		log.Printf("Failed to delete student %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student: " + err.Error()})
	}

	return c.SendStatus(204)
}

func databaseNotConfigured(c *fiber.Ctx) error {
	log.Println("Request rejected: database not configured")
	return c.Status(400).JSON(fiber.Map{
		"error": "Database not configured. Complete setup at /setup first.",
	})
}
