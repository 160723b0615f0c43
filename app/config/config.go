package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config holds everything the route handlers need, resolved once at startup.
// It is constructed explicitly and passed into each route setup function;
// nothing in this package keeps mutable process-wide state.
type Config struct {
	Database DatabaseConfig
	Qdrant   QdrantConfig
	AI       AIConfig
	Server   ServerConfig
}

type DatabaseConfig struct {
	URL string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
}

// AIConfig selects the AI provider used for embeddings and transcription.
// Provider is a closed tag ("openai" or "gemini"); the matching key must be set.
type AIConfig struct {
	Provider    string
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
	EmbedModel  string
}

type ServerConfig struct {
	Port      string
	UploadDir string
}

const (
	DefaultCollectionName = "student_notes"
	DefaultVectorSize     = 1536
)

// Load reads .env (if present) and the environment into a Config.
// An empty DATABASE_URL is allowed: the setup wizard supplies credentials
// per request until the operator persists them.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	vectorSize := DefaultVectorSize
	if raw := os.Getenv("QDRANT_VECTOR_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Printf("Invalid QDRANT_VECTOR_SIZE %q, using default %d", raw, DefaultVectorSize)
		} else {
			vectorSize = parsed
		}
	}

	collection := os.Getenv("QDRANT_COLLECTION")
	if collection == "" {
		collection = DefaultCollectionName
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	return &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Qdrant: QdrantConfig{
			URL:            os.Getenv("QDRANT_URL"),
			APIKey:         os.Getenv("QDRANT_API_KEY"),
			CollectionName: collection,
			VectorSize:     vectorSize,
		},
		AI: AIConfig{
			Provider:    os.Getenv("AI_PROVIDER"),
			OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
			OpenAIModel: os.Getenv("OPENAI_MODEL"),
			GeminiKey:   os.Getenv("GEMINI_API_KEY"),
			GeminiModel: os.Getenv("GEMINI_MODEL"),
			EmbedModel:  os.Getenv("EMBEDDING_MODEL"),
		},
		Server: ServerConfig{
			Port:      port,
			UploadDir: uploadDir,
		},
	}
}

// OpenDatabase opens and pings a Postgres connection with the pool limits
// the application uses everywhere.
func OpenDatabase(connStr string) (*sql.DB, error) {
	if connStr == "" {
		return nil, fmt.Errorf("connection string is required")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database connection failed: %v", err)
	}

	return db, nil
}

// ResolveConnectionString prefers the request-supplied value over the
// configured one. An empty result is the caller's configuration-missing case.
func (c *Config) ResolveConnectionString(fromRequest string) string {
	if fromRequest != "" {
		return fromRequest
	}
	return c.Database.URL
}
