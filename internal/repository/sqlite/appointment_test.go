package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
)

func createTestUser(t *testing.T, users repository.UserRepository) *model.User {
	t.Helper()

	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "hashed"}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestAppointmentCreateAndListOrder(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, NewUserRepository(db))
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	dates := []string{"2026-01-10", "2026-03-01", "2026-02-15"}
	for _, d := range dates {
		appointment := &model.Appointment{
			UserID:     user.ID,
			DoctorName: "Dr. Sarah Johnson",
			Specialty:  "Cardiology",
			Date:       d,
			Time:       "10:00",
			Duration:   60,
			Status:     "confirmed",
		}
		require.NoError(t, repo.Create(ctx, appointment))
		require.NotZero(t, appointment.ID)
	}

	appointments, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, appointments, 3)
	require.Equal(t, "2026-03-01", appointments[0].Date)
	require.Equal(t, "2026-02-15", appointments[1].Date)
	require.Equal(t, "2026-01-10", appointments[2].Date)
}

func TestAppointmentListScopedToUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, users)
	bob := &model.User{Name: "Bob", Email: "bob@example.com", Password: "hashed"}
	require.NoError(t, users.Create(ctx, bob))

	require.NoError(t, repo.Create(ctx, &model.Appointment{
		UserID: alice.ID, DoctorName: "Dr. X", Specialty: "Cardiology",
		Date: "2026-01-01", Time: "09:00", Duration: 60, Status: "confirmed",
	}))

	appointments, err := repo.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, appointments)
}

func TestAppointmentUpdateOnlyReschedulableColumns(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, NewUserRepository(db))
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	appointment := &model.Appointment{
		UserID: user.ID, DoctorName: "Dr. X", Specialty: "Cardiology",
		Date: "2026-01-01", Time: "09:00", Duration: 60, Status: "confirmed", Notes: "initial",
	}
	require.NoError(t, repo.Create(ctx, appointment))

	appointment.Date = "2026-02-02"
	appointment.Time = "14:00"
	appointment.Notes = "rescheduled"
	appointment.DoctorName = "Dr. Y" // must not be persisted
	require.NoError(t, repo.Update(ctx, appointment))

	got, err := repo.GetByID(ctx, appointment.ID)
	require.NoError(t, err)
	require.Equal(t, "2026-02-02", got.Date)
	require.Equal(t, "14:00", got.Time)
	require.Equal(t, "rescheduled", got.Notes)
	require.Equal(t, "Dr. X", got.DoctorName)
}

func TestAppointmentDeleteMissingIsNoop(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, NewUserRepository(db))
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	appointment := &model.Appointment{
		UserID: user.ID, DoctorName: "Dr. X", Specialty: "Cardiology",
		Date: "2026-01-01", Time: "09:00", Duration: 60, Status: "confirmed",
	}
	require.NoError(t, repo.Create(ctx, appointment))

	require.NoError(t, repo.Delete(ctx, 9999))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM appointments"))
	require.Equal(t, 1, count)

	// deleting twice is still a success and still one row gone
	require.NoError(t, repo.Delete(ctx, appointment.ID))
	require.NoError(t, repo.Delete(ctx, appointment.ID))
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM appointments"))
	require.Equal(t, 0, count)
}
