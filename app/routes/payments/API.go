package payments

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/database"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

func GetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	payments, err := database.GetAllPayments(db, limit, offset)
	if err != nil {
		log.Printf("Failed to fetch payments: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

func GetStudentPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	payments, err := database.GetPaymentsByStudent(db, c.Params("id"))
	if err != nil {
		log.Printf("Failed to fetch payments for student %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

func CreatePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if payment.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "student_id is required"})
	}
	if payment.Month < 1 || payment.Month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}

	if err := database.CreatePayment(db, &payment); err != nil {
		log.Printf("Failed to create payment: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment: " + err.Error()})
	}

	return c.Status(201).JSON(payment)
}

func UpdatePaymentStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	var body struct {
		Status models.PaymentStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	valid := false
	for _, s := range models.PaymentStatuses {
		if body.Status == s {
			valid = true
			break
		}
	}
	if !valid {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment status"})
	}

	err := database.UpdatePaymentStatus(db, c.Params("id"), body.Status)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
	}
	if err != nil {
		log.Printf("Failed to update payment %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}

func DeletePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	if db == nil {
		return databaseNotConfigured(c)
	}

	err := database.DeletePayment(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
	}
	if err != nil {
		log.Printf("Failed to delete payment %s: %v", c.Params("id"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete payment: " + err.Error()})
	}

	return c.SendStatus(204)
}

func databaseNotConfigured(c *fiber.Ctx) error {
	log.Println("Request rejected: database not configured")
	return c.Status(400).JSON(fiber.Map{
		"error": "Database not configured. Complete setup at /setup first.",
	})
}
