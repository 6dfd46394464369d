package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"family-bank/internal/logger"
	"family-bank/internal/middlewares"
	"family-bank/internal/models"
	"family-bank/internal/services"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	List(ctx context.Context, userID uuid.UUID, houseID string) ([]models.Transaction, error)
}

// ListTransactionsResponse represents a household's transactions
// swagger:model ListTransactionsResponse
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// NewListTransactionsHandler returns an HTTP handler listing all transactions
// of a household the caller belongs to.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param houseId query string true "Household id"
// @Success 200 {object} handlers.ListTransactionsResponse "Transactions"
// @Failure 403 {object} handlers.ErrorResponse "Not a member"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		houseID := r.URL.Query().Get("houseId")
		if houseID == "" {
			writeError(w, http.StatusBadRequest, "houseId is required")
			return
		}

		transactions, err := svc.List(r.Context(), claims.UserID, houseID)
		if err != nil {
			switch err {
			case services.ErrNotMember:
				writeError(w, http.StatusForbidden, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ListTransactionsResponse{Transactions: transactions})
	}
}
