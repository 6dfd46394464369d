package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"family-bank/internal/logger"
	"family-bank/internal/models"
)

// HouseholdWriteRepository handles household write operations
type HouseholdWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewHouseholdWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *HouseholdWriteRepository {
	return &HouseholdWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the household record under (HOUSE#id, META).
func (r *HouseholdWriteRepository) Save(ctx context.Context, household models.Household) error {
	const query = `
		INSERT INTO records (pk, sk, entity_type, attributes)
		VALUES ($1, $2, $3, $4)
	`

	attrs, err := json.Marshal(household)
	if err != nil {
		return err
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{models.HouseholdPK(household.HouseID), models.MetaSK, models.EntityHousehold, attrs}
	_, err = executor.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// HouseholdReadRepository handles household read operations
type HouseholdReadRepository struct {
	db *sqlx.DB
}

func NewHouseholdReadRepository(db *sqlx.DB) *HouseholdReadRepository {
	return &HouseholdReadRepository{db: db}
}

// GetByID returns the household or nil when it does not exist.
func (r *HouseholdReadRepository) GetByID(ctx context.Context, houseID string) (*models.Household, error) {
	const query = `
		SELECT attributes
		FROM records
		WHERE pk = $1 AND sk = $2
	`

	var attrs []byte
	err := r.db.GetContext(ctx, &attrs, query, models.HouseholdPK(houseID), models.MetaSK)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{houseID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var household models.Household
	if err := json.Unmarshal(attrs, &household); err != nil {
		return nil, err
	}

	return &household, nil
}
