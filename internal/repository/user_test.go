package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	repo := NewUserRepository(setupDB(t))

	user := testUser("kane@example.com", "NZ-001")
	require.NoError(t, repo.Create(user))

	byID, err := repo.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, user.NationalID, byID.NationalID)
	assert.Equal(t, user.Age, byID.Age)

	byEmail, err := repo.ByEmail("kane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(setupDB(t))

	_, err := repo.ByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.ByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupDB(t))

	require.NoError(t, repo.Create(testUser("dup@example.com", "ID-1")))

	err := repo.Create(testUser("dup@example.com", "ID-2"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_DuplicateNationalID(t *testing.T) {
	repo := NewUserRepository(setupDB(t))

	require.NoError(t, repo.Create(testUser("first@example.com", "ID-SAME")))

	err := repo.Create(testUser("second@example.com", "ID-SAME"))
	assert.ErrorIs(t, err, ErrDuplicateNationalID)
}
