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

// TransactionUpdater defines the interface that the service must implement.
type TransactionUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, houseID, date, txID, txType string, amount decimal.Decimal, category, note string) (*models.Transaction, error)
}

// UpdateTransactionRequest represents the JSON body for a transaction update.
// All four mutable fields are required; the note is replaced wholesale and
// an empty note clears it.
// swagger:model UpdateTransactionRequest
type UpdateTransactionRequest struct {
	// INCOME or EXPENSE
	// required: true
	Type string `json:"type"`

	// Amount, must be positive
	// required: true
	Amount decimal.Decimal `json:"amount"`

	// Category
	// required: true
	Category string `json:"category"`

	// Optional note
	Note string `json:"note"`
}

// NewUpdateTransactionHandler returns an HTTP handler replacing the mutable
// fields of a transaction.
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param houseId query string true "Household id"
// @Param date query string true "Transaction date (YYYY-MM-DD)"
// @Param txId query string true "Transaction id"
// @Param updateTransactionRequest body handlers.UpdateTransactionRequest true "Transaction update request"
// @Success 200 {object} handlers.TransactionResponse "Transaction updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /transactions [patch]
// @Security BearerAuth
func NewUpdateTransactionHandler(svc TransactionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		query := r.URL.Query()
		houseID := query.Get("houseId")
		date := query.Get("date")
		txID := query.Get("txId")
		if houseID == "" || date == "" || txID == "" {
			writeError(w, http.StatusBadRequest, "houseId, date and txId are required")
			return
		}

		var req UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		transaction, err := svc.Update(r.Context(), claims.UserID, houseID, date, txID, req.Type, req.Amount, req.Category, req.Note)
		if err != nil {
			switch err {
			case services.ErrInvalidTransactionType, services.ErrInvalidAmount,
				services.ErrCategoryRequired, services.ErrInvalidDate:
				writeError(w, http.StatusBadRequest, err.Error())
			case services.ErrNotMember:
				writeError(w, http.StatusForbidden, err.Error())
			case services.ErrTransactionNotFound:
				writeError(w, http.StatusNotFound, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TransactionResponse{Transaction: transaction})
	}
}
