package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("QDRANT_URL", "")
	t.Setenv("QDRANT_COLLECTION", "")
	t.Setenv("QDRANT_VECTOR_SIZE", "")
	t.Setenv("PORT", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := Load()

	assert.Equal(t, DefaultCollectionName, cfg.Qdrant.CollectionName)
	assert.Equal(t, DefaultVectorSize, cfg.Qdrant.VectorSize)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./uploads", cfg.Server.UploadDir)
}

func TestLoadVectorSizeOverride(t *testing.T) {
	t.Setenv("QDRANT_VECTOR_SIZE", "768")

	cfg := Load()

	assert.Equal(t, 768, cfg.Qdrant.VectorSize)
}

func TestLoadInvalidVectorSizeFallsBack(t *testing.T) {
	t.Setenv("QDRANT_VECTOR_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, DefaultVectorSize, cfg.Qdrant.VectorSize)
}

func TestResolveConnectionString(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{URL: "postgres://stored"}}

	assert.Equal(t, "postgres://from-request", cfg.ResolveConnectionString("postgres://from-request"))
	assert.Equal(t, "postgres://stored", cfg.ResolveConnectionString(""))

	empty := &Config{}
	assert.Equal(t, "", empty.ResolveConnectionString(""))
}
