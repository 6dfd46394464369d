package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"family-bank/internal/logger"
	"family-bank/internal/middlewares"
	"family-bank/internal/models"
	"family-bank/internal/services"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, userID uuid.UUID, houseID, txType string, amount decimal.Decimal, category, note, date string) (*models.Transaction, error)
}

// CreateTransactionRequest represents the JSON body for transaction creation
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Household id
	// required: true
	HouseID string `json:"houseId"`

	// INCOME or EXPENSE
	// required: true
	// example: EXPENSE
	Type string `json:"type"`

	// Amount, must be positive
	// required: true
	// example: 42.50
	Amount decimal.Decimal `json:"amount"`

	// Category
	// required: true
	// example: Food
	Category string `json:"category"`

	// Optional note
	Note string `json:"note"`

	// Calendar day, YYYY-MM-DD
	// required: true
	// example: 2026-01-15
	Date string `json:"date"`
}

// TransactionResponse represents a single transaction response
// swagger:model TransactionResponse
type TransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
}

// NewCreateTransactionHandler returns an HTTP handler for recording a
// transaction in a household the caller belongs to.
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param createTransactionRequest body handlers.CreateTransactionRequest true "Transaction creation request"
// @Success 201 {object} handlers.TransactionResponse "Transaction created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, category, type or date"
// @Failure 403 {object} handlers.ErrorResponse "Not a member"
// @Router /transactions [post]
// @Security BearerAuth
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.HouseID == "" {
			writeError(w, http.StatusBadRequest, "houseId is required")
			return
		}

		transaction, err := svc.Create(r.Context(), claims.UserID, req.HouseID, req.Type, req.Amount, req.Category, req.Note, req.Date)
		if err != nil {
			switch err {
			case services.ErrInvalidTransactionType, services.ErrInvalidAmount,
				services.ErrCategoryRequired, services.ErrInvalidDate:
				writeError(w, http.StatusBadRequest, err.Error())
			case services.ErrNotMember:
				writeError(w, http.StatusForbidden, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, TransactionResponse{Transaction: transaction})
	}
}
