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

// MembershipWriteRepository handles membership write operations
type MembershipWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMembershipWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MembershipWriteRepository {
	return &MembershipWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the membership under (HOUSE#house, MEMBER#user) and mirrors it
// onto the GSI as (USER#user, HOUSE#house). Returns false when the user is
// already a member of the household.
func (r *MembershipWriteRepository) Save(ctx context.Context, membership models.Membership) (bool, error) {
	const query = `
		INSERT INTO records (pk, sk, gsi1pk, gsi1sk, entity_type, attributes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (pk, sk) DO NOTHING
	`

	attrs, err := json.Marshal(membership)
	if err != nil {
		return false, err
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{
		models.HouseholdPK(membership.HouseID),
		models.MemberSK(membership.UserID),
		models.UserPK(membership.UserID),
		models.HouseholdPK(membership.HouseID),
		models.EntityMembership,
		attrs,
	}

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

// MembershipReadRepository handles membership read operations
type MembershipReadRepository struct {
	db *sqlx.DB
}

func NewMembershipReadRepository(db *sqlx.DB) *MembershipReadRepository {
	return &MembershipReadRepository{db: db}
}

// GetByHouseholdAndUser returns the membership or nil when the user does not
// belong to the household.
func (r *MembershipReadRepository) GetByHouseholdAndUser(ctx context.Context, houseID, userID string) (*models.Membership, error) {
	const query = `
		SELECT attributes
		FROM records
		WHERE pk = $1 AND sk = $2
	`

	var attrs []byte
	err := r.db.GetContext(ctx, &attrs, query, models.HouseholdPK(houseID), models.MemberSK(userID))

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{houseID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var membership models.Membership
	if err := json.Unmarshal(attrs, &membership); err != nil {
		return nil, err
	}

	return &membership, nil
}

// ListByHousehold returns all memberships of a household.
func (r *MembershipReadRepository) ListByHousehold(ctx context.Context, houseID string) ([]models.Membership, error) {
	const query = `
		SELECT attributes
		FROM records
		WHERE pk = $1 AND sk LIKE $2
		ORDER BY sk
	`

	var rows [][]byte
	err := r.db.SelectContext(ctx, &rows, query, models.HouseholdPK(houseID), models.MemberSKPrefix+"%")

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{houseID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	memberships := make([]models.Membership, 0, len(rows))
	for _, attrs := range rows {
		var membership models.Membership
		if err := json.Unmarshal(attrs, &membership); err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}

	return memberships, nil
}

// ListByUser returns all memberships of a user across households, served by
// the secondary index.
func (r *MembershipReadRepository) ListByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	const query = `
		SELECT attributes
		FROM records
		WHERE gsi1pk = $1 AND entity_type = $2
		ORDER BY gsi1sk
	`

	var rows [][]byte
	err := r.db.SelectContext(ctx, &rows, query, models.UserPK(userID), models.EntityMembership)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	memberships := make([]models.Membership, 0, len(rows))
	for _, attrs := range rows {
		var membership models.Membership
		if err := json.Unmarshal(attrs, &membership); err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}

	return memberships, nil
}
