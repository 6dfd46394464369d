package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"family-bank/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"secret","email":"john@example.com"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "secret", "john@example.com").
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"message": "User registered successfully"},
		},
		{
			name: "user already exists",
			body: `{"username":"alice","password":"pass","email":"alice@example.com"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "pass", "alice@example.com").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": services.ErrUserAlreadyExists.Error()},
		},
		{
			name: "internal server error",
			body: `{"username":"bob","password":"pass","email":"bob@example.com"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "pass", "bob@example.com").
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"message": "internal server error"},
		},
		{
			name:         "missing fields",
			body:         `{"username":"john"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "username, password and email are required"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
