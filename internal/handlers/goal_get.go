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

// GoalGetter defines the interface that the service must implement.
type GoalGetter interface {
	Get(ctx context.Context, userID uuid.UUID, houseID string) (*models.Goal, error)
}

// GoalResponse represents a household goal response
// swagger:model GoalResponse
type GoalResponse struct {
	Goal *models.Goal `json:"goal"`
}

// NewGetGoalHandler returns an HTTP handler for reading a household's
// savings goal. A household that never set one yields a zero-value default.
// @Summary Get savings goal
// @Tags goals
// @Produce json
// @Param houseId query string true "Household id"
// @Success 200 {object} handlers.GoalResponse "Goal (defaulted to zero when unset)"
// @Failure 403 {object} handlers.ErrorResponse "Not a member"
// @Router /goals [get]
// @Security BearerAuth
func NewGetGoalHandler(svc GoalGetter) http.HandlerFunc {
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

		goal, err := svc.Get(r.Context(), claims.UserID, houseID)
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

		writeJSON(w, http.StatusOK, GoalResponse{Goal: goal})
	}
}
