package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"family-bank/internal/models"
)

func TestHouseholdRepository_SaveAndGetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewHouseholdWriteRepository(db, nil)
	readRepo := NewHouseholdReadRepository(db)
	ctx := context.Background()

	household := models.Household{
		HouseID:   "house-1",
		Name:      "Smith Family",
		CreatedAt: time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
		CreatedBy: "user-1",
	}

	err := writeRepo.Save(ctx, household)
	assert.NoError(t, err)

	got, err := readRepo.GetByID(ctx, "house-1")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "Smith Family", got.Name)
	assert.Equal(t, "user-1", got.CreatedBy)

	var record models.Record
	err = db.Get(&record, "SELECT pk, sk, gsi1pk, gsi1sk, entity_type, attributes FROM records WHERE pk=$1 AND sk=$2",
		"HOUSE#house-1", models.MetaSK)
	assert.NoError(t, err)
	assert.Equal(t, models.EntityHousehold, record.EntityType)
	assert.Nil(t, record.GSI1PK)
}

func TestHouseholdReadRepository_GetByID_NotFound(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewHouseholdReadRepository(db)

	got, err := repo.GetByID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
