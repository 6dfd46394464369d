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

// ProfileWriteRepository handles profile write operations
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT of the user's profile record.
func (r *ProfileWriteRepository) Save(ctx context.Context, profile models.Profile) error {
	const query = `
		INSERT INTO records (pk, sk, entity_type, attributes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pk, sk) DO UPDATE SET attributes = EXCLUDED.attributes
	`

	attrs, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{models.UserPK(profile.UserID), models.ProfileSK, models.EntityProfile, attrs}
	_, err = executor.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// ProfileReadRepository handles profile read operations
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile or nil when the user never wrote one.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	const query = `
		SELECT attributes
		FROM records
		WHERE pk = $1 AND sk = $2
	`

	var attrs []byte
	err := r.db.GetContext(ctx, &attrs, query, models.UserPK(userID), models.ProfileSK)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := json.Unmarshal(attrs, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
