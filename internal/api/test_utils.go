package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cooksync/backend/internal/catalog"
	"github.com/cooksync/backend/internal/service"
	"github.com/cooksync/backend/internal/storage"
	"github.com/cooksync/backend/internal/store"
)

// SetupTestRouter builds a router backed by a throwaway file store.
func SetupTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := storage.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}

	st := store.New(context.Background(), kv)
	cat := catalog.Load(context.Background(), kv)
	authService := service.NewAuthService(st, "test-secret")

	router := gin.New()
	router.Use(gin.Recovery())
	RegisterRoutes(router, st, cat, authService, nil)

	return router, st
}

// LoginAndGetToken logs the demo account in through the API and returns the
// session token.
func LoginAndGetToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := PerformRequest(router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "minji@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	return resp.Token
}

// PerformRequest is a helper function to make HTTP requests in tests
func PerformRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	return PerformRequestWithToken(router, method, path, body, "")
}

// PerformRequestWithToken makes an HTTP request with a Bearer token
func PerformRequestWithToken(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}
