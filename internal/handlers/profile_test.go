package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family-bank/internal/models"
	"family-bank/internal/services"
)

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), userID).
			Return(&models.Profile{UserID: userID.String(), DisplayName: "Ana"}, nil)

		handler := NewGetProfileHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/profile", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Ana", resp.Profile.DisplayName)
	})

	t.Run("default profile when never written", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), userID).
			Return(&models.Profile{UserID: userID.String()}, nil)

		handler := NewGetProfileHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/profile", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Empty(t, resp.Profile.DisplayName)
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		mockSvc := NewMockProfileGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), userID).
			Return(nil, errors.New("db down"))

		handler := NewGetProfileHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/profile", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("no claims means unauthorized", func(t *testing.T) {
		handler := NewGetProfileHandler(NewMockProfileGetter(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestPutProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProfilePutter(ctrl)
		mockSvc.EXPECT().
			Put(gomock.Any(), userID, "Ana", "https://example.com/a.png").
			Return(&models.Profile{UserID: userID.String(), DisplayName: "Ana", AvatarURL: "https://example.com/a.png"}, nil)

		handler := NewPutProfileHandler(mockSvc)

		body := `{"displayName":"Ana","avatarUrl":"https://example.com/a.png"}`
		req := authedRequest(http.MethodPut, "/profile", body, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Ana", resp.Profile.DisplayName)
	})

	t.Run("blank display name maps to 400", func(t *testing.T) {
		mockSvc := NewMockProfilePutter(ctrl)
		mockSvc.EXPECT().
			Put(gomock.Any(), userID, "   ", "").
			Return(nil, services.ErrDisplayNameRequired)

		handler := NewPutProfileHandler(mockSvc)

		req := authedRequest(http.MethodPut, "/profile", `{"displayName":"   "}`, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewPutProfileHandler(NewMockProfilePutter(ctrl))

		req := authedRequest(http.MethodPut, "/profile", "{bad", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid request body")
	})
}

func TestListProfilesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProfileLister(ctrl)
		mockSvc.EXPECT().
			ListForHousehold(gomock.Any(), userID, "house-1").
			Return([]models.Profile{
				{UserID: "user-a", DisplayName: "Ana"},
				{UserID: "user-b"},
			}, nil)

		handler := NewListProfilesHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/profiles?houseId=house-1", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp ListProfilesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Profiles, 2)
		assert.Equal(t, "Ana", resp.Profiles[0].DisplayName)
		assert.Empty(t, resp.Profiles[1].DisplayName)
	})

	t.Run("not a member maps to 403", func(t *testing.T) {
		mockSvc := NewMockProfileLister(ctrl)
		mockSvc.EXPECT().
			ListForHousehold(gomock.Any(), userID, "house-1").
			Return(nil, services.ErrNotMember)

		handler := NewListProfilesHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/profiles?houseId=house-1", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing houseId", func(t *testing.T) {
		handler := NewListProfilesHandler(NewMockProfileLister(ctrl))

		req := authedRequest(http.MethodGet, "/profiles", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "houseId is required")
	})
}
