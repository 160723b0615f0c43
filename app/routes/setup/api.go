package setup

import (
	"database/sql"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/config"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/database"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/qdrant"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/seed"
)

// SchemaRequest is the /api/setup/schema body: Neon (Postgres) credentials
// plus the Qdrant endpoint for the notes collection.
type SchemaRequest struct {
	Neon struct {
		ConnectionString string `json:"connectionString"`
	} `json:"neon"`
	Qdrant struct {
		URL            string `json:"url"`
		APIKey         string `json:"apiKey"`
		CollectionName string `json:"collectionName"`
	} `json:"qdrant"`
}

// SampleDataRequest is shared by the three sample-data routes.
type SampleDataRequest struct {
	ConnectionString string `json:"connectionString"`
}

// CreateSchemaAPI provisions the relational schema and ensures the Qdrant
// collection in one call, reporting everything that was created.
func CreateSchemaAPI(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SchemaRequest
		if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
			return failJSON(c, fiber.StatusBadRequest, "Invalid request body", err)
		}

		connStr := cfg.ResolveConnectionString(req.Neon.ConnectionString)
		if connStr == "" {
			return failJSON(c, fiber.StatusBadRequest,
				"Database connection string is required. Provide it in the request or configure DATABASE_URL.", nil)
		}

		qdrantURL := req.Qdrant.URL
		if qdrantURL == "" {
			qdrantURL = cfg.Qdrant.URL
		}
		if qdrantURL == "" {
			return failJSON(c, fiber.StatusBadRequest,
				"Qdrant URL is required. Provide it in the request or configure QDRANT_URL.", nil)
		}
		qdrantKey := req.Qdrant.APIKey
		if qdrantKey == "" {
			qdrantKey = cfg.Qdrant.APIKey
		}
		collectionName := req.Qdrant.CollectionName
		if collectionName == "" {
			collectionName = cfg.Qdrant.CollectionName
		}

		db, err := config.OpenDatabase(connStr)
		if err != nil {
			return failJSON(c, fiber.StatusInternalServerError, "Failed to connect to database", err)
		}
		defer db.Close()

		result, err := database.CreateSchema(db)
		if err != nil {
			return failJSON(c, fiber.StatusInternalServerError, "Failed to create database schema", err)
		}

		client := qdrant.NewClient(qdrantURL, qdrantKey)
		resolvedName, created, err := client.EnsureCollection(c.Context(), collectionName, cfg.Qdrant.VectorSize)
		if err != nil {
			return failJSON(c, fiber.StatusInternalServerError, "Failed to ensure Qdrant collection", err)
		}

		message := "Database schema and vector collection are ready"
		if created {
			message = "Database schema created and vector collection provisioned"
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": message,
			"details": fiber.Map{
				"tables_created":    result.TablesCreated,
				"indexes_created":   result.IndexesCreated,
				"qdrant_collection": resolvedName,
			},
		})
	}
}

// TestDatabaseAPI checks that the relational store is reachable with the
// given credentials.
func TestDatabaseAPI(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SampleDataRequest
		if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
			return failJSON(c, fiber.StatusBadRequest, "Invalid request body", err)
		}

		connStr := cfg.ResolveConnectionString(req.ConnectionString)
		if connStr == "" {
			return failJSON(c, fiber.StatusBadRequest,
				"Database connection string is required. Provide it in the request or configure DATABASE_URL.", nil)
		}

		db, err := config.OpenDatabase(connStr)
		if err != nil {
			return failJSON(c, fiber.StatusInternalServerError, "Database connection failed", err)
		}
		defer db.Close()

		var version string
		if err := db.QueryRow("SELECT version()").Scan(&version); err != nil {
			return failJSON(c, fiber.StatusInternalServerError, "Database query failed", err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Database connection successful",
			"version": version,
		})
	}
}

// QdrantTestRequest is the /api/setup/test-qdrant body.
type QdrantTestRequest struct {
	URL    string `json:"url"`
	APIKey string `json:"apiKey"`
}

// TestQdrantAPI checks that the vector store is reachable and ready.
func TestQdrantAPI(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req QdrantTestRequest
		if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
			return failJSON(c, fiber.StatusBadRequest, "Invalid request body", err)
		}

		url := req.URL
		if url == "" {
			url = cfg.Qdrant.URL
		}
		if url == "" {
			return failJSON(c, fiber.StatusBadRequest,
				"Qdrant URL is required. Provide it in the request or configure QDRANT_URL.", nil)
		}
		apiKey := req.APIKey
		if apiKey == "" {
			apiKey = cfg.Qdrant.APIKey
		}

		client := qdrant.NewClient(url, apiKey)
		if err := client.HealthCheck(c.Context()); err != nil {
			return failJSON(c, fiber.StatusInternalServerError, "Qdrant connection failed", err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Qdrant connection successful",
		})
	}
}

// SeedStudentsAPI inserts the fixed catalog of ten demo students.
func SeedStudentsAPI(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db, errResp := openSeedDatabase(c, cfg)
		if db == nil {
			return errResp
		}
		defer db.Close()

		tx, err := db.Begin()
		if err != nil {
			return failSeed(c, fiber.StatusInternalServerError, "Failed to start transaction", err)
		}
		defer tx.Rollback()

		count := 0
		for _, student := range seed.StudentCatalog() {
			affected, err := database.InsertStudentTx(tx, student)
			if err != nil {
				return failSeed(c, fiber.StatusInternalServerError, "Failed to insert sample students", err)
			}
			if affected > 0 {
				count++
			}
		}

		if err := tx.Commit(); err != nil {
			return failSeed(c, fiber.StatusInternalServerError, "Failed to commit sample students", err)
		}

		log.Printf("Seeded %d sample students", count)
		return c.JSON(fiber.Map{
			"success": true,
			"count":   count,
			"message": "Sample students created successfully",
		})
	}
}

// SeedPaymentsAPI generates payments for the trailing six months for every
// existing student. Students must already be seeded.
func SeedPaymentsAPI(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db, errResp := openSeedDatabase(c, cfg)
		if db == nil {
			return errResp
		}
		defer db.Close()

		studentIDs, err := database.GetStudentIDs(db)
		if err != nil {
			return failSeed(c, fiber.StatusInternalServerError, "Failed to query students", err)
		}
		if len(studentIDs) == 0 {
			return failSeed(c, fiber.StatusBadRequest,
				"No students found. Please seed students first.", nil)
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		payments := seed.GeneratePayments(studentIDs, time.Now(), rng)

		tx, err := db.Begin()
		if err != nil {
			return failSeed(c, fiber.StatusInternalServerError, "Failed to start transaction", err)
		}
		defer tx.Rollback()

		count := 0
		for _, payment := range payments {
			affected, err := database.InsertPaymentTx(tx, payment)
			if err != nil {
				return failSeed(c, fiber.StatusInternalServerError, "Failed to insert sample payments", err)
			}
			if affected > 0 {
				count++
			}
		}

		if err := tx.Commit(); err != nil {
			return failSeed(c, fiber.StatusInternalServerError, "Failed to commit sample payments", err)
		}

		log.Printf("Seeded %d sample payments for %d students", count, len(studentIDs))
		return c.JSON(fiber.Map{
			"success": true,
			"count":   count,
			"message": "Sample payments created successfully",
		})
	}
}

// SeedTestsAPI generates 8-12 test results for every existing student.
// Students must already be seeded.
func SeedTestsAPI(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db, errResp := openSeedDatabase(c, cfg)
		if db == nil {
			return errResp
		}
		defer db.Close()

		studentIDs, err := database.GetStudentIDs(db)
		if err != nil {
			return failSeed(c, fiber.StatusInternalServerError, "Failed to query students", err)
		}
		if len(studentIDs) == 0 {
			return failSeed(c, fiber.StatusBadRequest,
				"No students found. Please seed students first.", nil)
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		tests := seed.GenerateTests(studentIDs, time.Now(), rng)

		tx, err := db.Begin()
		if err != nil {
			return failSeed(c, fiber.StatusInternalServerError, "Failed to start transaction", err)
		}
		defer tx.Rollback()

		count := 0
		for _, test := range tests {
			affected, err := database.InsertTestTx(tx, test)
			if err != nil {
				return failSeed(c, fiber.StatusInternalServerError, "Failed to insert sample tests", err)
			}
			if affected > 0 {
				count++
			}
		}

		if err := tx.Commit(); err != nil {
			return failSeed(c, fiber.StatusInternalServerError, "Failed to commit sample tests", err)
		}

		log.Printf("Seeded %d sample tests for %d students", count, len(studentIDs))
		return c.JSON(fiber.Map{
			"success": true,
			"count":   count,
			"message": "Sample tests created successfully",
		})
	}
}

// openSeedDatabase resolves credentials for a sample-data route and opens a
// request-scoped connection. On failure it writes the error response and
// returns a nil db; the caller must close the db when it is non-nil.
func openSeedDatabase(c *fiber.Ctx, cfg *config.Config) (*sql.DB, error) {
	var req SampleDataRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return nil, failSeed(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	connStr := cfg.ResolveConnectionString(req.ConnectionString)
	if connStr == "" {
		return nil, failSeed(c, fiber.StatusBadRequest,
			"Database connection string is required. Provide it in the request or configure DATABASE_URL.", nil)
	}

	db, err := config.OpenDatabase(connStr)
	if err != nil {
		return nil, failSeed(c, fiber.StatusInternalServerError, "Failed to connect to database", err)
	}
	return db, nil
}

// failJSON logs the failure and writes the standard error shape.
func failJSON(c *fiber.Ctx, status int, message string, err error) error {
	resp := fiber.Map{
		"success": false,
		"message": message,
	}
	if err != nil {
		log.Printf("Setup error (%d): %s: %v", status, message, err)
		resp["error"] = err.Error()
	} else {
		log.Printf("Setup error (%d): %s", status, message)
	}
	return c.Status(status).JSON(resp)
}

// failSeed is failJSON plus the count:0 the sample-data routes report.
func failSeed(c *fiber.Ctx, status int, message string, err error) error {
	resp := fiber.Map{
		"success": false,
		"count":   0,
		"message": message,
	}
	if err != nil {
		log.Printf("Seeding error (%d): %s: %v", status, message, err)
		resp["error"] = err.Error()
	} else {
		log.Printf("Seeding error (%d): %s", status, message)
	}
	return c.Status(status).JSON(resp)
}
