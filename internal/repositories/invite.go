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

// InviteWriteRepository handles invite write operations
type InviteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInviteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InviteWriteRepository {
	return &InviteWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the invite record under (INVITE#id, META).
func (r *InviteWriteRepository) Save(ctx context.Context, invite models.Invite) error {
	const query = `
		INSERT INTO records (pk, sk, entity_type, attributes)
		VALUES ($1, $2, $3, $4)
	`

	attrs, err := json.Marshal(invite)
	if err != nil {
		return err
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{models.InvitePK(invite.InviteID), models.MetaSK, models.EntityInvite, attrs}
	_, err = executor.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// MarkAccepted replaces the invite document on the condition that the stored
// record is still PENDING. Returns false when the condition fails, meaning a
// concurrent accept won the flip.
func (r *InviteWriteRepository) MarkAccepted(ctx context.Context, invite models.Invite) (bool, error) {
	const query = `
		UPDATE records
		SET attributes = $3
		WHERE pk = $1 AND sk = $2 AND attributes->>'status' = $4
	`

	attrs, err := json.Marshal(invite)
	if err != nil {
		return false, err
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{models.InvitePK(invite.InviteID), models.MetaSK, attrs, models.InvitePending}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// InviteReadRepository handles invite read operations
type InviteReadRepository struct {
	db *sqlx.DB
}

func NewInviteReadRepository(db *sqlx.DB) *InviteReadRepository {
	return &InviteReadRepository{db: db}
}

// GetByID returns the invite or nil when it does not exist.
func (r *InviteReadRepository) GetByID(ctx context.Context, inviteID string) (*models.Invite, error) {
	const query = `
		SELECT attributes
		FROM records
		WHERE pk = $1 AND sk = $2
	`

	var attrs []byte
	err := r.db.GetContext(ctx, &attrs, query, models.InvitePK(inviteID), models.MetaSK)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{inviteID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var invite models.Invite
	if err := json.Unmarshal(attrs, &invite); err != nil {
		return nil, err
	}

	return &invite, nil
}
