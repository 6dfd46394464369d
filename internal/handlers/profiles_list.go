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

// ProfileLister defines the interface that the service must implement.
type ProfileLister interface {
	ListForHousehold(ctx context.Context, userID uuid.UUID, houseID string) ([]models.Profile, error)
}

// ListProfilesResponse represents the member profiles of a household
// swagger:model ListProfilesResponse
type ListProfilesResponse struct {
	Profiles []models.Profile `json:"profiles"`
}

// NewListProfilesHandler returns an HTTP handler listing the profiles of
// every member of a household the caller belongs to.
// @Summary List member profiles
// @Tags profile
// @Produce json
// @Param houseId query string true "Household id"
// @Success 200 {object} handlers.ListProfilesResponse "Member profiles"
// @Failure 403 {object} handlers.ErrorResponse "Not a member"
// @Router /profiles [get]
// @Security BearerAuth
func NewListProfilesHandler(svc ProfileLister) http.HandlerFunc {
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

		profiles, err := svc.ListForHousehold(r.Context(), claims.UserID, houseID)
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

		writeJSON(w, http.StatusOK, ListProfilesResponse{Profiles: profiles})
	}
}
