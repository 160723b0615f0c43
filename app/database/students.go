package database

import (
	"database/sql"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (name, class, contact_info)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, student.Name, student.Class, student.ContactInfo).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

// InsertStudentTx inserts one student inside a seeding transaction and
// reports the affected-row count.
func InsertStudentTx(tx *sql.Tx, student *models.Student) (int64, error) {
	query := `INSERT INTO students (name, class, contact_info) VALUES ($1, $2, $3)`

	res, err := tx.Exec(query, student.Name, student.Class, student.ContactInfo)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, name, class, contact_info, created_at, updated_at
			  FROM students
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Class, &s.ContactInfo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, name, class, contact_info, created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).
		Scan(&s.ID, &s.Name, &s.Class, &s.ContactInfo, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStudentIDs returns every student id. The dependent seeders use this to
// validate their prerequisite before generating anything.
func GetStudentIDs(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT id FROM students ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET name = $1, class = $2, contact_info = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING updated_at`

	return db.QueryRow(query, student.Name, student.Class, student.ContactInfo, student.ID).
		Scan(&student.UpdatedAt)
}

// DeleteStudent removes a student; payments and tests cascade at the
// database level.
func DeleteStudent(db *sql.DB, studentID string) error {
	res, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
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
