package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"family-bank/internal/logger"
	"family-bank/internal/middlewares"
	"family-bank/internal/models"
	"family-bank/internal/services"
)

// HouseholdCreator defines the interface that the service must implement.
type HouseholdCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*models.UserHousehold, error)
}

// CreateHouseholdRequest represents the JSON body for household creation
// swagger:model CreateHouseholdRequest
type CreateHouseholdRequest struct {
	// Household name
	// required: true
	// example: Casa García
	Name string `json:"name"`
}

// CreateHouseholdResponse represents a successful household creation response
// swagger:model CreateHouseholdResponse
type CreateHouseholdResponse struct {
	// Created household with the caller's role
	Household *models.UserHousehold `json:"household"`
}

// NewCreateHouseholdHandler returns an HTTP handler for creating a household.
// The caller becomes its OWNER in the same request transaction.
// @Summary Create a household
// @Tags households
// @Accept json
// @Produce json
// @Param createHouseholdRequest body handlers.CreateHouseholdRequest true "Household creation request"
// @Success 201 {object} handlers.CreateHouseholdResponse "Household created"
// @Failure 400 {object} handlers.ErrorResponse "Blank name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /households [post]
// @Security BearerAuth
func NewCreateHouseholdHandler(svc HouseholdCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req CreateHouseholdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		household, err := svc.Create(r.Context(), claims.UserID, req.Name)
		if err != nil {
			switch err {
			case services.ErrHouseholdNameRequired:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateHouseholdResponse{Household: household})
	}
}
