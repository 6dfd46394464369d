package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"family-bank/internal/logger"
	"family-bank/internal/middlewares"
	"family-bank/internal/models"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// ProfileResponse represents a profile response
// swagger:model ProfileResponse
type ProfileResponse struct {
	Profile *models.Profile `json:"profile"`
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's own
// profile, defaulting to an empty display name if never set.
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		profile, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{Profile: profile})
	}
}
