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

// ProfilePutter defines the interface that the service must implement.
type ProfilePutter interface {
	Put(ctx context.Context, userID uuid.UUID, displayName, avatarURL string) (*models.Profile, error)
}

// PutProfileRequest represents the JSON body for a profile write
// swagger:model PutProfileRequest
type PutProfileRequest struct {
	// Display name, required after trimming
	// required: true
	// example: Ana
	DisplayName string `json:"displayName"`

	// Optional avatar URL
	AvatarURL string `json:"avatarUrl"`
}

// NewPutProfileHandler returns an HTTP handler overwriting the caller's
// profile record.
// @Summary Save own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param putProfileRequest body handlers.PutProfileRequest true "Profile write request"
// @Success 200 {object} handlers.ProfileResponse "Profile saved"
// @Failure 400 {object} handlers.ErrorResponse "Blank display name"
// @Router /profile [put]
// @Security BearerAuth
func NewPutProfileHandler(svc ProfilePutter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req PutProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		profile, err := svc.Put(r.Context(), claims.UserID, req.DisplayName, req.AvatarURL)
		if err != nil {
			switch err {
			case services.ErrDisplayNameRequired:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{Profile: profile})
	}
}
