package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"family-bank/internal/logger"
	"family-bank/internal/middlewares"
	"family-bank/internal/models"
)

// HouseholdLister defines the interface that the service must implement.
type HouseholdLister interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserHousehold, error)
}

// ListHouseholdsResponse represents the caller's households
// swagger:model ListHouseholdsResponse
type ListHouseholdsResponse struct {
	// Households the caller belongs to, with role
	Households []models.UserHousehold `json:"households"`
}

// NewListHouseholdsHandler returns an HTTP handler listing the caller's
// households.
// @Summary List households
// @Tags households
// @Produce json
// @Success 200 {object} handlers.ListHouseholdsResponse "Households"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /households [get]
// @Security BearerAuth
func NewListHouseholdsHandler(svc HouseholdLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		households, err := svc.ListForUser(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ListHouseholdsResponse{Households: households})
	}
}
