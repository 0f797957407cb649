package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/cookfolio-backend/internal/repository"
)

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewUserService(repository.NewMemoryStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Username: "chef_ana", Password: "pasta2024"})

	require.NoError(t, err)
	assert.NotEqual(t, "pasta2024", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pasta2024")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pasta2025")))

	byName, err := svc.GetUserByUsername(ctx, "chef_ana")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewUserService(repository.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "chef_ana", Password: "pasta2024"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "chef_ana", Password: "risotto99"})
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewUserService(repository.NewMemoryStore())

	for name, in := range map[string]RegisterInput{
		"short username": {Username: "ab", Password: "pasta2024"},
		"bad characters": {Username: "chef ana", Password: "pasta2024"},
		"weak password":  {Username: "chef_ana", Password: "short"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetUser_NotFound(t *testing.T) {
	_, err := NewUserService(repository.NewMemoryStore()).GetUser(context.Background(), 1)

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
