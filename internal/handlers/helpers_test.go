package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"

	"family-bank/internal/jwt"
	"family-bank/internal/middlewares"
)

// authedRequest builds a request carrying verified claims, as if it had
// passed through AuthMiddleware.
func authedRequest(method, target, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	claims := &jwt.Claims{UserID: userID, Email: "user@example.com"}
	return req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
}
