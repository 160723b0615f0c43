package database

import (
	"database/sql"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

// CreateTest inserts a test row. The percentage column is generated by the
// store from score and total_marks, so it is read back rather than written.
func CreateTest(db *sql.DB, test *models.Test) error {
	query := `INSERT INTO tests (student_id, subject, score, total_marks, date, test_type, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, percentage, created_at`

	return db.QueryRow(query,
		test.StudentID,
		test.Subject,
		test.Score,
		test.TotalMarks,
		test.Date,
		string(test.TestType),
		test.Notes,
	).Scan(&test.ID, &test.Percentage, &test.CreatedAt)
}

// InsertTestTx inserts one test inside a seeding transaction and reports the
// affected-row count.
func InsertTestTx(tx *sql.Tx, test *models.Test) (int64, error) {
	query := `INSERT INTO tests (student_id, subject, score, total_marks, date, test_type, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	res, err := tx.Exec(query,
		test.StudentID,
		test.Subject,
		test.Score,
		test.TotalMarks,
		test.Date,
		string(test.TestType),
		test.Notes,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func GetTestsByStudent(db *sql.DB, studentID string) ([]*models.Test, error) {
	query := `SELECT id, student_id, subject, score, total_marks, percentage, date, test_type, notes, created_at
			  FROM tests
			  WHERE student_id = $1
			  ORDER BY date DESC`

	return scanTests(db.Query(query, studentID))
}

func GetAllTests(db *sql.DB, limit, offset int) ([]*models.Test, error) {
	query := `SELECT id, student_id, subject, score, total_marks, percentage, date, test_type, notes, created_at
			  FROM tests
			  ORDER BY date DESC
			  LIMIT $1 OFFSET $2`

	return scanTests(db.Query(query, limit, offset))
}

func scanTests(rows *sql.Rows, err error) ([]*models.Test, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []*models.Test
	for rows.Next() {
		t := &models.Test{}
		var testType string
		var notes sql.NullString
		err := rows.Scan(
			&t.ID, &t.StudentID, &t.Subject, &t.Score, &t.TotalMarks,
			&t.Percentage, &t.Date, &testType, &notes, &t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		t.TestType = models.TestType(testType)
		t.Notes = notes.String
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

func DeleteTest(db *sql.DB, testID string) error {
	res, err := db.Exec(`DELETE FROM tests WHERE id = $1`, testID)
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
