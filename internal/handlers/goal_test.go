package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family-bank/internal/models"
	"family-bank/internal/services"
)

func TestGetGoalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockGoalGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, "house-1").
			Return(&models.Goal{HouseID: "house-1", SavingsGoal: decimal.NewFromInt(1500)}, nil)

		handler := NewGetGoalHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/goals?houseId=house-1", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp GoalResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Goal.SavingsGoal.Equal(decimal.NewFromInt(1500)))
		assert.Contains(t, rr.Body.String(), `"savingsGoal":1500`)
	})

	t.Run("missing houseId", func(t *testing.T) {
		handler := NewGetGoalHandler(NewMockGoalGetter(ctrl))

		req := authedRequest(http.MethodGet, "/goals", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "houseId is required")
	})

	t.Run("not a member maps to 403", func(t *testing.T) {
		mockSvc := NewMockGoalGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), userID, "house-1").
			Return(nil, services.ErrNotMember)

		handler := NewGetGoalHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/goals?houseId=house-1", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("no claims means unauthorized", func(t *testing.T) {
		handler := NewGetGoalHandler(NewMockGoalGetter(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/goals?houseId=house-1", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestPutGoalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockGoalPutter(ctrl)
		mockSvc.EXPECT().
			Put(gomock.Any(), userID, "house-1", gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, houseID string, savingsGoal decimal.Decimal) (*models.Goal, error) {
				assert.True(t, savingsGoal.Equal(decimal.NewFromInt(2000)))
				return &models.Goal{HouseID: houseID, SavingsGoal: savingsGoal, UpdatedBy: userID.String()}, nil
			})

		handler := NewPutGoalHandler(mockSvc)

		body := `{"houseId":"house-1","savingsGoal":2000}`
		req := authedRequest(http.MethodPut, "/goals", body, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp GoalResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, userID.String(), resp.Goal.UpdatedBy)
	})

	t.Run("negative goal maps to 400", func(t *testing.T) {
		mockSvc := NewMockGoalPutter(ctrl)
		mockSvc.EXPECT().
			Put(gomock.Any(), userID, "house-1", gomock.Any()).
			Return(nil, services.ErrInvalidSavingsGoal)

		handler := NewPutGoalHandler(mockSvc)

		body := `{"houseId":"house-1","savingsGoal":-5}`
		req := authedRequest(http.MethodPut, "/goals", body, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not a member maps to 403", func(t *testing.T) {
		mockSvc := NewMockGoalPutter(ctrl)
		mockSvc.EXPECT().
			Put(gomock.Any(), userID, "house-1", gomock.Any()).
			Return(nil, services.ErrNotMember)

		handler := NewPutGoalHandler(mockSvc)

		body := `{"houseId":"house-1","savingsGoal":100}`
		req := authedRequest(http.MethodPut, "/goals", body, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing houseId", func(t *testing.T) {
		handler := NewPutGoalHandler(NewMockGoalPutter(ctrl))

		req := authedRequest(http.MethodPut, "/goals", `{"savingsGoal":100}`, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "houseId is required")
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewPutGoalHandler(NewMockGoalPutter(ctrl))

		req := authedRequest(http.MethodPut, "/goals", "{bad", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid request body")
	})
}
