package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestLoginReturnsDemoAccount(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "minji@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "1", resp.User.ID)
	assert.Equal(t, "김민지", resp.User.Name)
	assert.Equal(t, "민지", resp.User.Nickname)
	assert.Equal(t, 15, resp.User.Stars)
}

func TestLoginValidatesInput(t *testing.T) {
	router, _ := SetupTestRouter(t)

	// Missing password
	w := PerformRequest(router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email": "minji@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Not an email
	w = PerformRequest(router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "not-an-email",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupCreatesFreshAccount(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/auth/signup", map[string]interface{}{
		"name":     "박준호",
		"nickname": "새내기",
		"email":    "new@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "새내기", resp.User.Nickname)
	assert.Equal(t, 0, resp.User.Stars)
	assert.Equal(t, "미슐랭 0스타", resp.User.Level)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "GET", "/api/v1/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = PerformRequestWithToken(router, "GET", "/api/v1/profile", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRoundTrip(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)

	w := PerformRequestWithToken(router, "GET", "/api/v1/profile", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequestWithToken(router, "PUT", "/api/v1/profile", map[string]interface{}{
		"nickname": "요리왕",
		"location": "서울 마포구",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "요리왕", profile["nickname"])
	assert.Equal(t, "서울 마포구", profile["location"])
	// Untouched fields survive the merge.
	assert.Equal(t, "minji@example.com", profile["email"])
}

func TestLogoutEndsSession(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)

	w := PerformRequestWithToken(router, "POST", "/api/v1/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// The token is still signed correctly, but there is no session behind it.
	w = PerformRequestWithToken(router, "GET", "/api/v1/profile", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
