package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"family-bank/internal/logger"
	"family-bank/internal/middlewares"
	"family-bank/internal/services"
)

// InviteCreator defines the interface that the service must implement.
type InviteCreator interface {
	Create(ctx context.Context, userID uuid.UUID, houseID, role string, expiresInHours int) (string, error)
}

// CreateInviteRequest represents the JSON body for invite creation
// swagger:model CreateInviteRequest
type CreateInviteRequest struct {
	// Target household id
	// required: true
	HouseID string `json:"houseId"`

	// Role to grant on acceptance, OWNER or MEMBER
	// required: true
	// example: MEMBER
	Role string `json:"role"`

	// Validity window in hours
	// required: true
	// example: 72
	ExpiresInHours int `json:"expiresInHours"`
}

// CreateInviteResponse represents a successful invite creation response.
// The client composes the shareable URL as <origin>/join?invite=<inviteId>.
// swagger:model CreateInviteResponse
type CreateInviteResponse struct {
	InviteID string `json:"inviteId"`
}

// NewCreateInviteHandler returns an HTTP handler for creating a one-time,
// time-limited invite. Only a household OWNER may create invites.
// @Summary Create an invite
// @Tags invites
// @Accept json
// @Produce json
// @Param createInviteRequest body handlers.CreateInviteRequest true "Invite creation request"
// @Success 201 {object} handlers.CreateInviteResponse "Invite created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid role or expiry"
// @Failure 403 {object} handlers.ErrorResponse "Not the OWNER"
// @Failure 404 {object} handlers.ErrorResponse "Household not found"
// @Router /invites [post]
// @Security BearerAuth
func NewCreateInviteHandler(svc InviteCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req CreateInviteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.HouseID == "" {
			writeError(w, http.StatusBadRequest, "houseId is required")
			return
		}

		inviteID, err := svc.Create(r.Context(), claims.UserID, req.HouseID, req.Role, req.ExpiresInHours)
		if err != nil {
			switch err {
			case services.ErrInvalidInviteRole, services.ErrInvalidInviteExpiry:
				writeError(w, http.StatusBadRequest, err.Error())
			case services.ErrNotOwner:
				writeError(w, http.StatusForbidden, err.Error())
			case services.ErrHouseholdNotFound:
				writeError(w, http.StatusNotFound, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateInviteResponse{InviteID: inviteID})
	}
}
