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

// InviteAccepter defines the interface that the service must implement.
type InviteAccepter interface {
	Accept(ctx context.Context, userID uuid.UUID, inviteID string) error
}

// AcceptInviteRequest represents the JSON body for invite acceptance
// swagger:model AcceptInviteRequest
type AcceptInviteRequest struct {
	// Invite id from the shared link
	// required: true
	InviteID string `json:"inviteId"`
}

// AcceptInviteResponse is intentionally empty.
// swagger:model AcceptInviteResponse
type AcceptInviteResponse struct{}

// NewAcceptInviteHandler returns an HTTP handler that redeems an invite,
// adding the caller to the household with the invite's role.
// @Summary Accept an invite
// @Tags invites
// @Accept json
// @Produce json
// @Param acceptInviteRequest body handlers.AcceptInviteRequest true "Invite acceptance request"
// @Success 200 {object} handlers.AcceptInviteResponse "Invite accepted"
// @Failure 404 {object} handlers.ErrorResponse "Invite not found"
// @Failure 409 {object} handlers.ErrorResponse "Invite expired, already used, or caller already a member"
// @Router /invites/accept [post]
// @Security BearerAuth
func NewAcceptInviteHandler(svc InviteAccepter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req AcceptInviteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.InviteID == "" {
			writeError(w, http.StatusBadRequest, "inviteId is required")
			return
		}

		if err := svc.Accept(r.Context(), claims.UserID, req.InviteID); err != nil {
			switch err {
			case services.ErrInviteNotFound:
				writeError(w, http.StatusNotFound, err.Error())
			case services.ErrInviteNotPending, services.ErrInviteExpired, services.ErrAlreadyMember:
				writeError(w, http.StatusConflict, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, AcceptInviteResponse{})
	}
}
