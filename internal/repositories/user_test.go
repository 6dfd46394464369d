package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"family-bank/internal/models"
)

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
	}

	err := repo.Save(ctx, user)
	assert.NoError(t, err)

	var stored struct {
		Username     string `db:"username"`
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
	}
	err = db.Get(&stored, "SELECT username, email, password_hash FROM users WHERE user_id=$1", user.UserID)
	assert.NoError(t, err)

	assert.Equal(t, "alice", stored.Username)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.Equal(t, "hash123", stored.PasswordHash)
}

func TestUserWriteRepository_Save_DuplicateUsername(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	first := models.UserDB{UserID: uuid.New(), Username: "bob", Email: "bob@example.com", PasswordHash: "h1"}
	err := repo.Save(ctx, first)
	assert.NoError(t, err)

	second := models.UserDB{UserID: uuid.New(), Username: "bob", Email: "other@example.com", PasswordHash: "h2"}
	err = repo.Save(ctx, second)
	assert.Error(t, err)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     "carol",
		Email:        "carol@example.com",
		PasswordHash: "hash456",
	}
	err := writeRepo.Save(ctx, user)
	assert.NoError(t, err)

	t.Run("found by username", func(t *testing.T) {
		username := "carol"
		got, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)
		assert.Equal(t, "carol@example.com", got.Email)
	})

	t.Run("found by email", func(t *testing.T) {
		email := "carol@example.com"
		got, err := readRepo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "carol", got.Username)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		username := "nobody"
		got, err := readRepo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("nil filters match nothing", func(t *testing.T) {
		got, err := readRepo.GetByUsernameOrEmail(ctx, nil, nil)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
