package database

import (
	"database/sql"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

// UpsertAppConfig writes a user-scoped setting, replacing any existing value
// for the same (user_id, key) pair.
func UpsertAppConfig(db *sql.DB, cfg *models.AppConfig) error {
	query := `INSERT INTO app_config (user_id, key, value)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_id, key)
			  DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
			  RETURNING id, updated_at`

	return db.QueryRow(query, cfg.UserID, cfg.Key, cfg.Value).
		Scan(&cfg.ID, &cfg.UpdatedAt)
}

func GetAppConfig(db *sql.DB, userID, key string) (*models.AppConfig, error) {
	cfg := &models.AppConfig{}
	query := `SELECT id, user_id, key, value, updated_at
			  FROM app_config
			  WHERE user_id = $1 AND key = $2`

	err := db.QueryRow(query, userID, key).
		Scan(&cfg.ID, &cfg.UserID, &cfg.Key, &cfg.Value, &cfg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func GetAppConfigsForUser(db *sql.DB, userID string) ([]*models.AppConfig, error) {
	query := `SELECT id, user_id, key, value, updated_at
			  FROM app_config
			  WHERE user_id = $1
			  ORDER BY key ASC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*models.AppConfig
	for rows.Next() {
		cfg := &models.AppConfig{}
		if err := rows.Scan(&cfg.ID, &cfg.UserID, &cfg.Key, &cfg.Value, &cfg.UpdatedAt); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func DeleteAppConfig(db *sql.DB, userID, key string) error {
	res, err := db.Exec(`DELETE FROM app_config WHERE user_id = $1 AND key = $2`, userID, key)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
