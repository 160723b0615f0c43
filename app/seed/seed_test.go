package seed

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

func TestStudentCatalogIsDeterministic(t *testing.T) {
	first := StudentCatalog()
	second := StudentCatalog()

	require.Len(t, first, 10)
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Class, second[i].Class)
		assert.Equal(t, first[i].ContactInfo, second[i].ContactInfo)
		assert.NotEmpty(t, first[i].ContactInfo["phone"])
		assert.Contains(t, first[i].ContactInfo["email"], "@example.com")
	}
}

func TestGeneratePaymentsMonthBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ids := []string{"s1", "s2", "s3"}

	payments := GeneratePayments(ids, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), rng)

	for _, p := range payments {
		assert.GreaterOrEqual(t, p.Month, 1)
		assert.LessOrEqual(t, p.Month, 12)
		assert.GreaterOrEqual(t, p.Amount, 150.0)
		assert.Less(t, p.Amount, 250.0)
		assert.Contains(t, models.PaymentStatuses, p.Status)
		assert.Contains(t, models.PaymentMethods, p.PaymentMethod)
		assert.Equal(t, paymentNote(p.Status), p.Notes)
	}
}

func TestGeneratePaymentsJanuaryWrapsToPriorDecember(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	january := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	ids := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10"}
	payments := GeneratePayments(ids, january, rng)
	require.NotEmpty(t, payments)

	sawDecember := false
	for _, p := range payments {
		// Six months back from January: Dec-Jul of 2024, never January 2025.
		assert.Equal(t, 2024, p.Year)
		assert.GreaterOrEqual(t, p.Month, 7)
		assert.LessOrEqual(t, p.Month, 12)
		if p.Month == 12 {
			sawDecember = true
		}
	}
	assert.True(t, sawDecember, "offset 1 from January must land in December of the prior year")
}

func TestGeneratePaymentsRespectsPerStudentCap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}

	payments := GeneratePayments(ids, time.Now(), rng)

	perStudent := map[string]int{}
	for _, p := range payments {
		perStudent[p.StudentID]++
		assert.Contains(t, ids, p.StudentID)
	}
	assert.LessOrEqual(t, len(payments), 60, "10 students x 6 months x at most one payment")
	for id, n := range perStudent {
		assert.LessOrEqual(t, n, 6, "student %s has too many payments", id)
	}
}

func TestGenerateTestsCountsAndScores(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	now := time.Now()

	tests := GenerateTests(ids, now, rng)

	assert.GreaterOrEqual(t, len(tests), 80)
	assert.LessOrEqual(t, len(tests), 120)

	perStudent := map[string]int{}
	for _, tc := range tests {
		perStudent[tc.StudentID]++

		assert.LessOrEqual(t, tc.Score, tc.TotalMarks)
		assert.GreaterOrEqual(t, tc.Score, 0.0)
		assert.Contains(t, models.TestTypes, tc.TestType)
		assert.Contains(t, subjects, tc.Subject)

		// Score is floored from a simulated percentage in [60%, 90%).
		assert.Less(t, tc.Score/tc.TotalMarks, 0.9)

		assert.False(t, tc.Date.After(now))
		assert.False(t, tc.Date.Before(now.AddDate(0, 0, -90)))
	}
	for id, n := range perStudent {
		assert.GreaterOrEqual(t, n, 8, "student %s has too few tests", id)
		assert.LessOrEqual(t, n, 12, "student %s has too many tests", id)
	}
}

func TestTotalMarksRangesByType(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		quiz := totalMarksFor(models.TestQuiz, rng)
		assert.GreaterOrEqual(t, quiz, 10.0)
		assert.LessOrEqual(t, quiz, 25.0)

		assignment := totalMarksFor(models.TestAssignment, rng)
		assert.GreaterOrEqual(t, assignment, 20.0)
		assert.LessOrEqual(t, assignment, 50.0)

		project := totalMarksFor(models.TestProject, rng)
		assert.GreaterOrEqual(t, project, 20.0)
		assert.LessOrEqual(t, project, 50.0)

		final := totalMarksFor(models.TestFinal, rng)
		assert.GreaterOrEqual(t, final, 50.0)
		assert.LessOrEqual(t, final, 100.0)
	}
}

func TestTestNoteBuckets(t *testing.T) {
	assert.Equal(t, "Excellent performance", testNote(0.85))
	assert.Equal(t, "Excellent performance", testNote(0.8))
	assert.Equal(t, "Good work, keep it up", testNote(0.75))
	assert.Equal(t, "Satisfactory, room to improve", testNote(0.65))
	assert.Equal(t, "Needs improvement", testNote(0.55))
}
