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

// GoalWriteRepository handles goal write operations
type GoalWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGoalWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GoalWriteRepository {
	return &GoalWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT of the single goal record of a household.
func (r *GoalWriteRepository) Save(ctx context.Context, goal models.Goal) error {
	const query = `
		INSERT INTO records (pk, sk, entity_type, attributes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pk, sk) DO UPDATE SET attributes = EXCLUDED.attributes
	`

	attrs, err := json.Marshal(goal)
	if err != nil {
		return err
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{models.HouseholdPK(goal.HouseID), models.GoalSK, models.EntityGoal, attrs}
	_, err = executor.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GoalReadRepository handles goal read operations
type GoalReadRepository struct {
	db *sqlx.DB
}

func NewGoalReadRepository(db *sqlx.DB) *GoalReadRepository {
	return &GoalReadRepository{db: db}
}

// GetByHousehold returns the goal or nil when the household never set one.
func (r *GoalReadRepository) GetByHousehold(ctx context.Context, houseID string) (*models.Goal, error) {
	const query = `
		SELECT attributes
		FROM records
		WHERE pk = $1 AND sk = $2
	`

	var attrs []byte
	err := r.db.GetContext(ctx, &attrs, query, models.HouseholdPK(houseID), models.GoalSK)

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

	var goal models.Goal
	if err := json.Unmarshal(attrs, &goal); err != nil {
		return nil, err
	}

	return &goal, nil
}
