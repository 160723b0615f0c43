package database

import (
	"database/sql"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

func CreateConversation(db *sql.DB, conv *models.Conversation) error {
	query := `INSERT INTO conversations (query, response, audio_file_path, query_type, processing_time)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		conv.Query,
		conv.Response,
		conv.AudioFilePath,
		string(conv.QueryType),
		conv.ProcessingTime,
	).Scan(&conv.ID, &conv.CreatedAt)
}

func GetRecentConversations(db *sql.DB, limit int) ([]*models.Conversation, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, query, response, audio_file_path, query_type, processing_time, created_at
			  FROM conversations
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		c := &models.Conversation{}
		var queryType string
		err := rows.Scan(
			&c.ID, &c.Query, &c.Response, &c.AudioFilePath,
			&queryType, &c.ProcessingTime, &c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		c.QueryType = models.QueryType(queryType)
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}
