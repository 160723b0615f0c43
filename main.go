package main

import (
	"database/sql"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/ai"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/config"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/qdrant"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/routes/conversations"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/routes/notes"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/routes/payments"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/routes/settings"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/routes/setup"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/routes/students"
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/routes/tests"
)

// customErrorHandler keeps API errors as JSON and everything else as a
// rendered page.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Student Tracker",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	cfg := config.Load()

	// The database is optional at startup: the setup wizard can supply
	// credentials per request until DATABASE_URL is configured.
	var sqlDB *sql.DB
	if cfg.Database.URL != "" {
		var err error
		sqlDB, err = config.OpenDatabase(cfg.Database.URL)
		if err != nil {
			log.Printf("Starting without a database connection: %v", err)
			sqlDB = nil
		} else {
			defer sqlDB.Close()
			log.Println("Database connected successfully")
		}
	} else {
		log.Println("DATABASE_URL not set; CRUD APIs disabled until setup completes")
	}

	var qdrantClient *qdrant.Client
	if cfg.Qdrant.URL != "" {
		qdrantClient = qdrant.NewClient(cfg.Qdrant.URL, cfg.Qdrant.APIKey)
	} else {
		log.Println("Qdrant not configured; notes API disabled until setup completes")
	}

	provider, err := ai.NewProvider(cfg.AI)
	if err != nil {
		log.Printf("AI provider not available: %v", err)
		provider = nil
	}

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/setup")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	setup.SetupSetupRoutes(app, cfg)
	students.SetupStudentsRoutes(app, sqlDB)
	payments.SetupPaymentsRoutes(app, sqlDB)
	tests.SetupTestsRoutes(app, sqlDB)
	conversations.SetupConversationsRoutes(app, sqlDB, provider, cfg.Server.UploadDir)
	settings.SetupSettingsRoutes(app, sqlDB)
	notes.SetupNotesRoutes(app, cfg, qdrantClient, provider)

	log.Printf("Student tracker listening on :%s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
