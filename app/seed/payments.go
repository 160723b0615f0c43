package seed

import (
	"math/rand"
	"time"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

// paymentProbability is the chance a student has a payment row for a given
// trailing month.
const paymentProbability = 0.8

// GeneratePayments produces demo payments covering the six calendar months
// before now for every given student. Month arithmetic wraps the year
// boundary, so generating in January yields December rows of the prior year.
func GeneratePayments(studentIDs []string, now time.Time, rng *rand.Rand) []*models.Payment {
	var payments []*models.Payment

	for _, studentID := range studentIDs {
		for offset := 1; offset <= 6; offset++ {
			month := int(now.Month()) - offset
			year := now.Year()
			if month <= 0 {
				month += 12
				year--
			}

			if rng.Float64() >= paymentProbability {
				continue
			}

			status := models.PaymentStatuses[rng.Intn(len(models.PaymentStatuses))]
			method := models.PaymentMethods[rng.Intn(len(models.PaymentMethods))]

			payments = append(payments, &models.Payment{
				StudentID:     studentID,
				Amount:        150 + rng.Float64()*100,
				Month:         month,
				Year:          year,
				Status:        status,
				PaymentDate:   time.Date(year, time.Month(month), 1+rng.Intn(28), 0, 0, 0, 0, now.Location()),
				PaymentMethod: method,
				Notes:         paymentNote(status),
			})
		}
	}
	return payments
}

// paymentNote maps a status to its explanatory note text.
func paymentNote(status models.PaymentStatus) string {
	switch status {
	case models.PaymentPaid:
		return "Monthly fee received on time"
	case models.PaymentPending:
		return "Payment reminder sent to parent"
	case models.PaymentOverdue:
		return "Payment overdue, follow up required"
	case models.PaymentCancelled:
		return "Payment cancelled after fee adjustment"
	default:
		return ""
	}
}
