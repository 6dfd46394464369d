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

// GoalPutter defines the interface that the service must implement.
type GoalPutter interface {
	Put(ctx context.Context, userID uuid.UUID, houseID string, savingsGoal decimal.Decimal) (*models.Goal, error)
}

// PutGoalRequest represents the JSON body for setting a savings goal
// swagger:model PutGoalRequest
type PutGoalRequest struct {
	// Household id
	// required: true
	HouseID string `json:"houseId"`

	// Savings goal, must be non-negative
	// required: true
	// example: 1500
	SavingsGoal decimal.Decimal `json:"savingsGoal"`
}

// NewPutGoalHandler returns an HTTP handler overwriting the single goal
// record of a household the caller belongs to.
// @Summary Set savings goal
// @Tags goals
// @Accept json
// @Produce json
// @Param putGoalRequest body handlers.PutGoalRequest true "Goal upsert request"
// @Success 200 {object} handlers.GoalResponse "Goal saved"
// @Failure 400 {object} handlers.ErrorResponse "Negative goal"
// @Failure 403 {object} handlers.ErrorResponse "Not a member"
// @Router /goals [put]
// @Security BearerAuth
func NewPutGoalHandler(svc GoalPutter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req PutGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.HouseID == "" {
			writeError(w, http.StatusBadRequest, "houseId is required")
			return
		}

		goal, err := svc.Put(r.Context(), claims.UserID, req.HouseID, req.SavingsGoal)
		if err != nil {
			switch err {
			case services.ErrInvalidSavingsGoal:
				writeError(w, http.StatusBadRequest, err.Error())
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
