package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"personalsite/internal/config"
	handlers "personalsite/internal/handler"
	"personalsite/internal/models"
)

func createTestHandler() *handlers.Handlers {
	cfg := &config.Config{
		ServerPort:        8080,
		Environment:       "development",
		JWTSecretKey:      "test-secret-key",
		AuthTokenDuration: 168 * time.Hour,
		MaxUploadSize:     5 * 1024 * 1024,
	}

	return &handlers.Handlers{
		AuthService:     &MockAuthService{},
		PostService:     &MockPostService{},
		CommentService:  &MockCommentService{},
		SettingsService: &MockSettingsService{},
		Cfg:             cfg,
		Validate:        validator.New(),
	}
}

func adminClaims() *models.Claims {
	return &models.Claims{
		UserID:    "admin-id",
		Email:     "admin@example.com",
		Role:      models.RoleAdmin,
		Name:      "admin",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(168 * time.Hour),
	}
}

func userClaims() *models.Claims {
	return &models.Claims{
		UserID:    "user-id",
		Email:     "alice@example.com",
		Role:      models.RoleUser,
		Name:      "alice",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(168 * time.Hour),
	}
}

// withClaims подкладывает claims в контекст так же, как это делает middleware
func withClaims(r *http.Request, claims *models.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), handlers.ClaimsContextKey, claims))
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
