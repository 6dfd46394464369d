package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"family-bank/internal/logger"
	"family-bank/internal/models"
)

// Error variables
var (
	ErrInvalidTransactionType = errors.New("type must be INCOME or EXPENSE")
	ErrInvalidAmount          = errors.New("amount must be a positive number")
	ErrCategoryRequired       = errors.New("category is required")
	ErrInvalidDate            = errors.New("date must be YYYY-MM-DD")
	ErrTransactionNotFound    = errors.New("transaction not found")
)

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	Save(ctx context.Context, transaction models.Transaction) error
	Update(ctx context.Context, transaction models.Transaction) (bool, error) // Returns false when the row does not exist
	Delete(ctx context.Context, houseID, date, txID string) (bool, error)     // Returns false when the row does not exist
}

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	GetByKey(ctx context.Context, houseID, date, txID string) (*models.Transaction, error)
	ListByHousehold(ctx context.Context, houseID string) ([]models.Transaction, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService handles household transactions and event publishing.
type TransactionService struct {
	writeRepo     TransactionWriter
	readRepo      TransactionReader
	profileReader ProfileReader
	memberReader  MembershipReader
	cache         MembershipCache
	kafkaWriter   KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	writeRepo TransactionWriter,
	readRepo TransactionReader,
	profileReader ProfileReader,
	memberReader MembershipReader,
	cache MembershipCache,
	kafkaWriter KafkaWriter,
) *TransactionService {
	return &TransactionService{
		writeRepo:     writeRepo,
		readRepo:      readRepo,
		profileReader: profileReader,
		memberReader:  memberReader,
		cache:         cache,
		kafkaWriter:   kafkaWriter,
	}
}

// validateTransactionFields checks the four mutable fields; all four are
// required on create and on update.
func validateTransactionFields(txType string, amount decimal.Decimal, category, date string) error {
	if !models.ValidTransactionType(txType) {
		return ErrInvalidTransactionType
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(category) == "" {
		return ErrCategoryRequired
	}
	if _, err := time.Parse(models.TransactionDateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// publishEvent publishes a transaction event to Kafka. Best effort: a nil
// writer skips publishing and failures never fail the request.
func (svc *TransactionService) publishEvent(ctx context.Context, action string, transaction models.Transaction, userID string) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "tx_id", transaction.TxID)
		return
	}

	event := models.TransactionEvent{
		EventID:   uuid.NewString(),
		Action:    action,
		HouseID:   transaction.HouseID,
		TxID:      transaction.TxID,
		Type:      transaction.Type,
		Amount:    transaction.Amount,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction event", "tx_id", transaction.TxID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(transaction.TxID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction event", "tx_id", transaction.TxID, "error", err)
	} else {
		logger.Log.Infow("Transaction event published", "tx_id", transaction.TxID, "action", action)
	}
}

// Create validates and stores a new transaction for a household the caller
// belongs to, stamping the creator id and a snapshot of the creator's
// current profile onto the record.
func (svc *TransactionService) Create(ctx context.Context, userID uuid.UUID, houseID, txType string, amount decimal.Decimal, category, note, date string) (*models.Transaction, error) {
	if err := validateTransactionFields(txType, amount, category, date); err != nil {
		return nil, err
	}

	role, err := resolveRole(ctx, svc.cache, svc.memberReader, houseID, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to resolve caller role", "houseID", houseID, "userID", userID, "error", err)
		return nil, err
	}
	if role == "" {
		return nil, ErrNotMember
	}

	transaction := models.Transaction{
		TxID:      uuid.NewString(),
		HouseID:   houseID,
		Type:      txType,
		Amount:    amount,
		Category:  strings.TrimSpace(category),
		Note:      note,
		Date:      date,
		CreatedAt: time.Now().UTC(),
		CreatedBy: userID.String(),
	}

	profile, err := svc.profileReader.GetByUserID(ctx, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to get creator profile", "userID", userID, "error", err)
		return nil, err
	}
	if profile != nil {
		transaction.CreatedByName = profile.DisplayName
		transaction.CreatedByAvatar = profile.AvatarURL
	}

	if err := svc.writeRepo.Save(ctx, transaction); err != nil {
		logger.Log.Errorw("failed to save transaction", "houseID", houseID, "error", err)
		return nil, err
	}

	svc.publishEvent(ctx, models.EventTransactionCreated, transaction, userID.String())

	return &transaction, nil
}

// List returns all transactions of a household the caller belongs to.
func (svc *TransactionService) List(ctx context.Context, userID uuid.UUID, houseID string) ([]models.Transaction, error) {
	role, err := resolveRole(ctx, svc.cache, svc.memberReader, houseID, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to resolve caller role", "houseID", houseID, "userID", userID, "error", err)
		return nil, err
	}
	if role == "" {
		return nil, ErrNotMember
	}

	return svc.readRepo.ListByHousehold(ctx, houseID)
}

// Update replaces the four mutable fields of a transaction. The note is
// replaced wholesale: an empty note clears it. The creator snapshot is left
// untouched.
func (svc *TransactionService) Update(ctx context.Context, userID uuid.UUID, houseID, date, txID, txType string, amount decimal.Decimal, category, note string) (*models.Transaction, error) {
	if err := validateTransactionFields(txType, amount, category, date); err != nil {
		return nil, err
	}

	role, err := resolveRole(ctx, svc.cache, svc.memberReader, houseID, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to resolve caller role", "houseID", houseID, "userID", userID, "error", err)
		return nil, err
	}
	if role == "" {
		return nil, ErrNotMember
	}

	existing, err := svc.readRepo.GetByKey(ctx, houseID, date, txID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "houseID", houseID, "txID", txID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrTransactionNotFound
	}

	updated := *existing
	updated.Type = txType
	updated.Amount = amount
	updated.Category = strings.TrimSpace(category)
	updated.Note = note

	ok, err := svc.writeRepo.Update(ctx, updated)
	if err != nil {
		logger.Log.Errorw("failed to update transaction", "houseID", houseID, "txID", txID, "error", err)
		return nil, err
	}
	if !ok {
		return nil, ErrTransactionNotFound
	}

	svc.publishEvent(ctx, models.EventTransactionUpdated, updated, userID.String())

	return &updated, nil
}

// Delete permanently removes a transaction.
func (svc *TransactionService) Delete(ctx context.Context, userID uuid.UUID, houseID, date, txID string) error {
	role, err := resolveRole(ctx, svc.cache, svc.memberReader, houseID, userID.String())
	if err != nil {
		logger.Log.Errorw("failed to resolve caller role", "houseID", houseID, "userID", userID, "error", err)
		return err
	}
	if role == "" {
		return ErrNotMember
	}

	ok, err := svc.writeRepo.Delete(ctx, houseID, date, txID)
	if err != nil {
		logger.Log.Errorw("failed to delete transaction", "houseID", houseID, "txID", txID, "error", err)
		return err
	}
	if !ok {
		return ErrTransactionNotFound
	}

	svc.publishEvent(ctx, models.EventTransactionDeleted, models.Transaction{
		TxID:    txID,
		HouseID: houseID,
		Date:    date,
	}, userID.String())

	return nil
}
