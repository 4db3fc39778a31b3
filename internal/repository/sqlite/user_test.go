package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nes268/healmate/internal/model"
	"github.com/nes268/healmate/internal/repository"
)

func TestUserCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{
		Name:        "Alice",
		Email:       "alice@example.com",
		Password:    "hashed",
		Phone:       "+1000000000",
		DateOfBirth: "1992-03-04",
		BloodGroup:  "A+",
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, "Alice", byEmail.Name)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "alice@example.com", byID.Email)
}

func TestUserLookupMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, user)

	user, err = repo.GetByID(ctx, 12345)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &model.User{Name: "Alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, first))

	second := &model.User{Name: "Imposter", Email: "alice@example.com", Password: "y"}
	err := repo.Create(ctx, second)
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users"))
	require.Equal(t, 1, count)
}

func TestUserUpdateLeavesCredentialsAlone(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, user))

	user.Name = "Alice B."
	user.Phone = "+1999999999"
	user.EmergencyContactName = "Bob"
	user.EmergencyContactPhone = "+1888888888"
	user.EmergencyContactRelationship = "Brother"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice B.", got.Name)
	require.Equal(t, "+1999999999", got.Phone)
	require.Equal(t, "Bob", got.EmergencyContactName)
	require.Equal(t, "hashed", got.Password)
	require.Equal(t, "alice@example.com", got.Email)
}
