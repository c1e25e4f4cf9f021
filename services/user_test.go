package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.Register(RegisterInput{
		FirstName: "Megh",
		Email:     "megh@example.com",
		Password:  "correct horse",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", user.Password, "password must be stored hashed")

	logged, token, err := f.users.Login("megh@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	require.NotEmpty(t, token)

	id, isAdmin, err := f.users.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.False(t, isAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Register(RegisterInput{FirstName: "Megh", Email: "megh@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, _, err = f.users.Login("megh@example.com", "wrong horse")
	require.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.Register(RegisterInput{FirstName: "Megh", Email: "megh@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = f.users.Register(RegisterInput{FirstName: "Other", Email: "megh@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, KindDuplicate, KindOf(err))
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.users.ParseToken("not-a-token")
	require.Error(t, err)
}
