package database

import (
	"database/sql"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

func CreatePayment(db *sql.DB, payment *models.Payment) error {
	query := `INSERT INTO payments (student_id, amount, month, year, status, payment_date, payment_method, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		payment.StudentID,
		payment.Amount,
		payment.Month,
		payment.Year,
		string(payment.Status),
		payment.PaymentDate,
		string(payment.PaymentMethod),
		payment.Notes,
	).Scan(&payment.ID, &payment.CreatedAt)
}

// InsertPaymentTx inserts one payment inside a seeding transaction and
// reports the affected-row count.
func InsertPaymentTx(tx *sql.Tx, payment *models.Payment) (int64, error) {
	query := `INSERT INTO payments (student_id, amount, month, year, status, payment_date, payment_method, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	res, err := tx.Exec(query,
		payment.StudentID,
		payment.Amount,
		payment.Month,
		payment.Year,
		string(payment.Status),
		payment.PaymentDate,
		string(payment.PaymentMethod),
		payment.Notes,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func GetPaymentsByStudent(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := `SELECT id, student_id, amount, month, year, status, payment_date, payment_method, notes, created_at
			  FROM payments
			  WHERE student_id = $1
			  ORDER BY year DESC, month DESC`

	return scanPayments(db.Query(query, studentID))
}

func GetAllPayments(db *sql.DB, limit, offset int) ([]*models.Payment, error) {
	query := `SELECT id, student_id, amount, month, year, status, payment_date, payment_method, notes, created_at
			  FROM payments
			  ORDER BY payment_date DESC
			  LIMIT $1 OFFSET $2`

	return scanPayments(db.Query(query, limit, offset))
}

func scanPayments(rows *sql.Rows, err error) ([]*models.Payment, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		var status string
		var method, notes sql.NullString
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.Amount, &p.Month, &p.Year,
			&status, &p.PaymentDate, &method, &notes, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		p.Status = models.PaymentStatus(status)
		p.PaymentMethod = models.PaymentMethod(method.String)
		p.Notes = notes.String
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func UpdatePaymentStatus(db *sql.DB, paymentID string, status models.PaymentStatus) error {
	res, err := db.Exec(`UPDATE payments SET status = $1 WHERE id = $2`, string(status), paymentID)
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

func DeletePayment(db *sql.DB, paymentID string) error {
	res, err := db.Exec(`DELETE FROM payments WHERE id = $1`, paymentID)
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
