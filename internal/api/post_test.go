package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPost(t *testing.T, router *gin.Engine, token string) string {
	t.Helper()

	w := PerformRequestWithToken(router, "POST", "/api/v1/posts", map[string]interface{}{
		"title":       "계란 한 판 나눠요",
		"description": "30구 중 15구만 필요해요",
		"price":       "4,000원",
		"place":       "둔산동 현대아파트 정문",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create post: %d %s", w.Code, w.Body.String())
	}

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, ok := created["id"].(string)
	require.True(t, ok)
	return id
}

func TestCreatePostAppliesDefaults(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)

	// Client-supplied likes/status are overridden on create.
	w := PerformRequestWithToken(router, "POST", "/api/v1/posts", map[string]interface{}{
		"title":  "양파 5kg 나눔",
		"likes":  99,
		"status": "completed",
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, float64(0), created["likes"])
	assert.Equal(t, "available", created["status"])
	assert.Contains(t, created["id"], "user-post-")
}

func TestUpdatePostStatus(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)
	id := createTestPost(t, router, token)

	w := PerformRequestWithToken(router, "PUT", "/api/v1/posts/"+id, map[string]interface{}{
		"status": "completed",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/posts/"+id, nil)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "completed", got["status"])

	// Anything besides available/completed is rejected.
	w = PerformRequestWithToken(router, "PUT", "/api/v1/posts/"+id, map[string]interface{}{
		"status": "pending",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleLikePostByID(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)
	id := createTestPost(t, router, token)

	w := PerformRequestWithToken(router, "POST", "/api/v1/posts/"+id+"/like", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["liked"])

	w = PerformRequestWithToken(router, "GET", "/api/v1/liked-posts", nil, token)
	var liked struct {
		Posts []map[string]interface{} `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	require.Len(t, liked.Posts, 1)
	assert.Equal(t, id, liked.Posts[0]["id"])
	assert.NotEmpty(t, liked.Posts[0]["savedAt"])

	// Unknown post without a body cannot be liked.
	w = PerformRequestWithToken(router, "POST", "/api/v1/posts/no-such-post/like", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)
	id := createTestPost(t, router, token)

	w := PerformRequestWithToken(router, "DELETE", "/api/v1/posts/"+id, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/posts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
