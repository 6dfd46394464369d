package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"family-bank/internal/logger"
	"family-bank/internal/middlewares"
	"family-bank/internal/services"
)

// TransactionDeleter defines the interface that the service must implement.
type TransactionDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, houseID, date, txID string) error
}

// DeleteTransactionResponse is the empty success body of a deletion.
// swagger:model DeleteTransactionResponse
type DeleteTransactionResponse struct{}

// NewDeleteTransactionHandler returns an HTTP handler permanently removing a
// transaction. Deletion is physical; there is no soft-delete.
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param houseId query string true "Household id"
// @Param date query string true "Transaction date (YYYY-MM-DD)"
// @Param txId query string true "Transaction id"
// @Success 200 {object} handlers.DeleteTransactionResponse "Transaction deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /transactions [delete]
// @Security BearerAuth
func NewDeleteTransactionHandler(svc TransactionDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), claims.UserID, houseID, date, txID); err != nil {
			switch err {
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

		writeJSON(w, http.StatusOK, DeleteTransactionResponse{})
	}
}
