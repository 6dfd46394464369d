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

func TestListTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockTransactionLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID, "house-1").
			Return([]models.Transaction{
				{TxID: "tx-a", HouseID: "house-1", Type: models.TypeIncome, Amount: decimal.NewFromInt(100), Date: "2025-05-01"},
				{TxID: "tx-b", HouseID: "house-1", Type: models.TypeExpense, Amount: decimal.NewFromFloat(42.5), Date: "2025-05-03"},
			}, nil)

		handler := NewListTransactionsHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/transactions?houseId=house-1", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp ListTransactionsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Transactions, 2)
		assert.Equal(t, "tx-a", resp.Transactions[0].TxID)
		assert.Equal(t, "tx-b", resp.Transactions[1].TxID)
	})

	t.Run("empty household stays an array", func(t *testing.T) {
		mockSvc := NewMockTransactionLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID, "house-1").
			Return([]models.Transaction{}, nil)

		handler := NewListTransactionsHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/transactions?houseId=house-1", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"transactions":[]`)
	})

	t.Run("not a member maps to 403", func(t *testing.T) {
		mockSvc := NewMockTransactionLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID, "house-1").
			Return(nil, services.ErrNotMember)

		handler := NewListTransactionsHandler(mockSvc)

		req := authedRequest(http.MethodGet, "/transactions?houseId=house-1", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing houseId", func(t *testing.T) {
		handler := NewListTransactionsHandler(NewMockTransactionLister(ctrl))

		req := authedRequest(http.MethodGet, "/transactions", "", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "houseId is required")
	})
}
