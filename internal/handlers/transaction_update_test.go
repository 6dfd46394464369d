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

func TestUpdateTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	target := "/transactions?houseId=house-1&date=2025-05-01&txId=tx-1"

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockTransactionUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, "house-1", "2025-05-01", "tx-1", "EXPENSE", gomock.Any(), "utilities", "").
			DoAndReturn(func(_ any, _ uuid.UUID, houseID, date, txID, txType string, amount decimal.Decimal, category, note string) (*models.Transaction, error) {
				assert.True(t, amount.Equal(decimal.NewFromInt(100)))
				return &models.Transaction{
					TxID:     txID,
					HouseID:  houseID,
					Type:     txType,
					Amount:   amount,
					Category: category,
					Date:     date,
				}, nil
			})

		handler := NewUpdateTransactionHandler(mockSvc)

		body := `{"type":"EXPENSE","amount":100,"category":"utilities","note":""}`
		req := authedRequest(http.MethodPatch, target, body, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TransactionResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "utilities", resp.Transaction.Category)
	})

	t.Run("missing key params", func(t *testing.T) {
		handler := NewUpdateTransactionHandler(NewMockTransactionUpdater(ctrl))

		body := `{"type":"EXPENSE","amount":100,"category":"utilities"}`
		req := authedRequest(http.MethodPatch, "/transactions?houseId=house-1", body, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "houseId, date and txId are required")
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		mockSvc := NewMockTransactionUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, "house-1", "2025-05-01", "tx-1", "TRANSFER", gomock.Any(), "utilities", "").
			Return(nil, services.ErrInvalidTransactionType)

		handler := NewUpdateTransactionHandler(mockSvc)

		body := `{"type":"TRANSFER","amount":100,"category":"utilities"}`
		req := authedRequest(http.MethodPatch, target, body, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		mockSvc := NewMockTransactionUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, "house-1", "2025-05-01", "tx-1", "EXPENSE", gomock.Any(), "utilities", "").
			Return(nil, services.ErrTransactionNotFound)

		handler := NewUpdateTransactionHandler(mockSvc)

		body := `{"type":"EXPENSE","amount":100,"category":"utilities"}`
		req := authedRequest(http.MethodPatch, target, body, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("not a member maps to 403", func(t *testing.T) {
		mockSvc := NewMockTransactionUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), userID, "house-1", "2025-05-01", "tx-1", "EXPENSE", gomock.Any(), "utilities", "").
			Return(nil, services.ErrNotMember)

		handler := NewUpdateTransactionHandler(mockSvc)

		body := `{"type":"EXPENSE","amount":100,"category":"utilities"}`
		req := authedRequest(http.MethodPatch, target, body, userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewUpdateTransactionHandler(NewMockTransactionUpdater(ctrl))

		req := authedRequest(http.MethodPatch, target, "{bad", userID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid request body")
	})
}
