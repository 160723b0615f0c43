package database

import (
	"database/sql"
	"log"
)

// SchemaResult enumerates what CreateSchema provisioned. The names are
// reported regardless of whether the object already existed; the DDL is
// idempotent so repeat runs converge on the same set.
type SchemaResult struct {
	TablesCreated  []string `json:"tables_created"`
	IndexesCreated []string `json:"indexes_created"`
}

type schemaObject struct {
	name  string
	query string
}

var tableDefinitions = []schemaObject{
	{
		name: "students",
		query: `
			CREATE TABLE IF NOT EXISTS students (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(255) NOT NULL,
				class VARCHAR(100) NOT NULL,
				contact_info JSONB NOT NULL DEFAULT '{}',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "payments",
		query: `
			CREATE TABLE IF NOT EXISTS payments (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
				amount DECIMAL(10,2) NOT NULL,
				month INT NOT NULL CHECK (month BETWEEN 1 AND 12),
				year INT NOT NULL,
				status VARCHAR(20) NOT NULL DEFAULT 'pending',
				payment_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				payment_method VARCHAR(30),
				notes TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "tests",
		query: `
			CREATE TABLE IF NOT EXISTS tests (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
				subject VARCHAR(100) NOT NULL,
				score DECIMAL(6,2) NOT NULL CHECK (score >= 0),
				total_marks DECIMAL(6,2) NOT NULL CHECK (total_marks > 0),
				percentage DECIMAL(5,2) GENERATED ALWAYS AS (score / total_marks * 100) STORED,
				date TIMESTAMPTZ NOT NULL,
				test_type VARCHAR(20) NOT NULL,
				notes TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "conversations",
		query: `
			CREATE TABLE IF NOT EXISTS conversations (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				query TEXT NOT NULL,
				response TEXT NOT NULL,
				audio_file_path TEXT,
				query_type VARCHAR(10) NOT NULL DEFAULT 'text',
				processing_time DECIMAL(8,3) NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "app_config",
		query: `
			CREATE TABLE IF NOT EXISTS app_config (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				user_id VARCHAR(255) NOT NULL,
				key VARCHAR(255) NOT NULL,
				value TEXT,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (user_id, key)
			)
		`,
	},
}

var indexDefinitions = []schemaObject{
	{"idx_payments_student_id", `CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id)`},
	{"idx_payments_year_month", `CREATE INDEX IF NOT EXISTS idx_payments_year_month ON payments(year, month)`},
	{"idx_tests_student_id", `CREATE INDEX IF NOT EXISTS idx_tests_student_id ON tests(student_id)`},
	{"idx_tests_date", `CREATE INDEX IF NOT EXISTS idx_tests_date ON tests(date)`},
	{"idx_conversations_created_at", `CREATE INDEX IF NOT EXISTS idx_conversations_created_at ON conversations(created_at)`},
	{"idx_app_config_user_id", `CREATE INDEX IF NOT EXISTS idx_app_config_user_id ON app_config(user_id)`},
}

// CreateSchema applies the full relational schema. Safe to invoke repeatedly.
func CreateSchema(db *sql.DB) (*SchemaResult, error) {
	log.Println("Creating database schema...")

	result := &SchemaResult{}

	for _, table := range tableDefinitions {
		if _, err := db.Exec(table.query); err != nil {
			log.Printf("Failed to create table %s: %v", table.name, err)
			return nil, err
		}
		result.TablesCreated = append(result.TablesCreated, table.name)
	}

	for _, index := range indexDefinitions {
		if _, err := db.Exec(index.query); err != nil {
			log.Printf("Failed to create index %s: %v", index.name, err)
			return nil, err
		}
		result.IndexesCreated = append(result.IndexesCreated, index.name)
	}

	log.Printf("Schema ready: %d tables, %d indexes", len(result.TablesCreated), len(result.IndexesCreated))
	return result, nil
}
