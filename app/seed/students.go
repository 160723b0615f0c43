// Package seed generates the demo dataset used by the setup wizard.
// Generation is kept separate from insertion so the distributions can be
// tested without a database.
package seed

import (
	"github.com/iamfrodeveloper/student-tracking-app-sub001/app/models"
)

// StudentCatalog returns the fixed set of ten demo students. The contact
// details are deterministic so repeated seeding produces identical rows.
func StudentCatalog() []*models.Student {
	return []*models.Student{
		newCatalogStudent("Aarav Sharma", "10A", "+91 98100 11001", "Rohit Sharma"),
		newCatalogStudent("Priya Patel", "10A", "+91 98100 11002", "Mehul Patel"),
		newCatalogStudent("Rahul Verma", "10B", "+91 98100 11003", "Sunita Verma"),
		newCatalogStudent("Ananya Iyer", "10B", "+91 98100 11004", "Ganesh Iyer"),
		newCatalogStudent("Vikram Singh", "9A", "+91 98100 11005", "Harpreet Singh"),
		newCatalogStudent("Sneha Reddy", "9A", "+91 98100 11006", "Lakshmi Reddy"),
		newCatalogStudent("Arjun Nair", "9B", "+91 98100 11007", "Deepa Nair"),
		newCatalogStudent("Kavya Menon", "9B", "+91 98100 11008", "Suresh Menon"),
		newCatalogStudent("Rohan Gupta", "8A", "+91 98100 11009", "Anita Gupta"),
		newCatalogStudent("Ishita Joshi", "8A", "+91 98100 11010", "Prakash Joshi"),
	}
}

func newCatalogStudent(name, class, phone, parent string) *models.Student {
	return &models.Student{
		Name:  name,
		Class: class,
		ContactInfo: models.ContactInfo{
			"phone":       phone,
			"email":       emailForName(name),
			"parent_name": parent,
			"address":     "Demo Lane, Sample City",
		},
	}
}

func emailForName(name string) string {
	email := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			email = append(email, r+('a'-'A'))
		case r == ' ':
			email = append(email, '.')
		default:
			email = append(email, r)
		}
	}
	return string(email) + "@example.com"
}
