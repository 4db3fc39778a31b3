package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// demo account password is "password"
const demoPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// Seed inserts the demo user, doctors, wait times and payments the
// first time the database is created. It is a no-op once any user
// exists.
func Seed(db *sqlx.DB) error {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO users (name, email, password, phone, dateOfBirth, bloodGroup,
			emergencyContactName, emergencyContactPhone, emergencyContactRelationship)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		"John Doe", "john.doe@example.com", demoPasswordHash, "+1234567890",
		"1990-05-15", "O+", "Jane Doe", "+1234567891", "Spouse",
	)
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	doctors := []struct {
		name      string
		specialty string
		exp       int
		rating    float64
		slots     string
	}{
		{"Dr. Sarah Johnson", "Cardiology", 15, 4.8, `["09:00","10:00","11:00","14:00","15:00"]`},
		{"Dr. Michael Chen", "Laboratory", 10, 4.6, `["08:00","09:00","10:00","13:00","14:00"]`},
		{"Dr. Emily Brown", "Neurology", 12, 4.9, `["10:00","11:00","14:00","15:00","16:00"]`},
	}
	for _, d := range doctors {
		_, err = tx.Exec(`
			INSERT INTO doctors (name, specialty, experience, rating, availableSlots, image)
			VALUES (?, ?, ?, ?, ?, ?)`,
			d.name, d.specialty, d.exp, d.rating, d.slots, "https://via.placeholder.com/150",
		)
		if err != nil {
			return fmt.Errorf("failed to seed doctor: %w", err)
		}
	}

	waitTimes := []struct {
		department string
		wait       int
		status     string
	}{
		{"Emergency Department", 45, "moderate"},
		{"Outpatient Clinic", 15, "low"},
		{"Radiology", 30, "moderate"},
	}
	for _, w := range waitTimes {
		_, err = tx.Exec(
			`INSERT INTO wait_times (department, currentWait, status) VALUES (?, ?, ?)`,
			w.department, w.wait, w.status,
		)
		if err != nil {
			return fmt.Errorf("failed to seed wait time: %w", err)
		}
	}

	_, err = tx.Exec(
		`INSERT INTO payments (userId, amount, description, status, dueDate) VALUES (?, ?, ?, ?, ?)`,
		1, 150.0, "Lab Test Payment", "pending", "2024-12-20",
	)
	if err != nil {
		return fmt.Errorf("failed to seed payment: %w", err)
	}

	return tx.Commit()
}
