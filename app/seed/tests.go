package seed

import (
	"math"
	"math/rand"
	"time"

	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

var subjects = []string{
	"Mathematics",
	"Science",
	"English",
	"History",
	"Geography",
	"Computer Science",
}

// GenerateTests produces 8 to 12 demo test results per student. Marks scale
// with the assessment type; the achieved score simulates a percentage in
// [60%, 90%) floored onto the total, and the note text follows the score
// ratio.
func GenerateTests(studentIDs []string, now time.Time, rng *rand.Rand) []*models.Test {
	var tests []*models.Test

	for _, studentID := range studentIDs {
		count := 8 + rng.Intn(5)
		for i := 0; i < count; i++ {
			testType := models.TestTypes[rng.Intn(len(models.TestTypes))]
			totalMarks := totalMarksFor(testType, rng)

			percentage := 0.6 + rng.Float64()*0.3
			score := math.Floor(percentage * totalMarks)

			tests = append(tests, &models.Test{
				StudentID:  studentID,
				Subject:    subjects[rng.Intn(len(subjects))],
				Score:      score,
				TotalMarks: totalMarks,
				Date:       now.AddDate(0, 0, -rng.Intn(90)),
				TestType:   testType,
				Notes:      testNote(score / totalMarks),
			})
		}
	}
	return tests
}

func totalMarksFor(testType models.TestType, rng *rand.Rand) float64 {
	switch testType {
	case models.TestQuiz:
		return float64(10 + rng.Intn(16)) // 10-25
	case models.TestAssignment, models.TestProject:
		return float64(20 + rng.Intn(31)) // 20-50
	default:
		return float64(50 + rng.Intn(51)) // 50-100
	}
}

func testNote(ratio float64) string {
	switch {
	case ratio >= 0.8:
		return "Excellent performance"
	case ratio >= 0.7:
		return "Good work, keep it up"
	case ratio >= 0.6:
		return "Satisfactory, room to improve"
	default:
		return "Needs improvement"
	}
}
