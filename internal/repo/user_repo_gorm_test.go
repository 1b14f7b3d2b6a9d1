package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffee-wifi/internal/domain"
)

func TestUserCreateAndFindByEmail(t *testing.T) {
	r := NewUserRepo(newTestDB(t))

	u := &domain.User{Email: "ada@example.com", Name: "Ada", PasswordHash: "x"}
	require.NoError(t, r.Create(u))
	assert.NotZero(t, u.ID)

	got, err := r.FindByEmail("ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Ada", got.Name)

	missing, err := r.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserDuplicateEmailNeverCreatesSecondRow(t *testing.T) {
	r := NewUserRepo(newTestDB(t))

	require.NoError(t, r.Create(&domain.User{Email: "ada@example.com", Name: "Ada", PasswordHash: "x"}))
	err := r.Create(&domain.User{Email: "ada@example.com", Name: "Imposter", PasswordHash: "y"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	got, err := r.FindByEmail("ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.Name)
}

func TestUserFindByIDMissingIsNil(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	u, err := r.FindByID(7)
	require.NoError(t, err)
	assert.Nil(t, u)
}
