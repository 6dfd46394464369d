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

// TransactionWriteRepository handles transaction write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts the transaction under (HOUSE#house, TX#date#txId).
func (r *TransactionWriteRepository) Save(ctx context.Context, transaction models.Transaction) error {
	const query = `
		INSERT INTO records (pk, sk, entity_type, attributes)
		VALUES ($1, $2, $3, $4)
	`

	attrs, err := json.Marshal(transaction)
	if err != nil {
		return err
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{
		models.HouseholdPK(transaction.HouseID),
		models.TransactionSK(transaction.Date, transaction.TxID),
		models.EntityTransaction,
		attrs,
	}
	_, err = executor.ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update replaces the stored transaction document. Returns false when the
// row does not exist.
func (r *TransactionWriteRepository) Update(ctx context.Context, transaction models.Transaction) (bool, error) {
	const query = `
		UPDATE records
		SET attributes = $3
		WHERE pk = $1 AND sk = $2
	`

	attrs, err := json.Marshal(transaction)
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
		models.HouseholdPK(transaction.HouseID),
		models.TransactionSK(transaction.Date, transaction.TxID),
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

// Delete permanently removes the row. Returns false when it does not exist.
func (r *TransactionWriteRepository) Delete(ctx context.Context, houseID, date, txID string) (bool, error) {
	const query = `
		DELETE FROM records
		WHERE pk = $1 AND sk = $2
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{models.HouseholdPK(houseID), models.TransactionSK(date, txID)}

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

// TransactionReadRepository handles transaction read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByKey returns the transaction or nil when it does not exist.
func (r *TransactionReadRepository) GetByKey(ctx context.Context, houseID, date, txID string) (*models.Transaction, error) {
	const query = `
		SELECT attributes
		FROM records
		WHERE pk = $1 AND sk = $2
	`

	var attrs []byte
	err := r.db.GetContext(ctx, &attrs, query, models.HouseholdPK(houseID), models.TransactionSK(date, txID))

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{houseID, date, txID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var transaction models.Transaction
	if err := json.Unmarshal(attrs, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

// ListByHousehold returns all transactions of a household, ordered by sort
// key (date, then id).
func (r *TransactionReadRepository) ListByHousehold(ctx context.Context, houseID string) ([]models.Transaction, error) {
	const query = `
		SELECT attributes
		FROM records
		WHERE pk = $1 AND sk LIKE $2
		ORDER BY sk
	`

	var rows [][]byte
	err := r.db.SelectContext(ctx, &rows, query, models.HouseholdPK(houseID), models.TransactionSKPrefix+"%")

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{houseID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, attrs := range rows {
		var transaction models.Transaction
		if err := json.Unmarshal(attrs, &transaction); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}
