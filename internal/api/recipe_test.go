package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsPublic(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "GET", "/api/v1/recipes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []map[string]interface{} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Recipes)

	w = PerformRequest(router, "GET", "/api/v1/recipes/recipe-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/recipes/no-such-recipe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogSearchFilters(t *testing.T) {
	router, _ := SetupTestRouter(t)

	w := PerformRequest(router, "GET", "/api/v1/recipes?q=김치", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []map[string]interface{} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "김치찌개", resp.Recipes[0]["title"])

	w = PerformRequest(router, "GET", "/api/v1/recipes?category=양식", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, r := range resp.Recipes {
		assert.Equal(t, "양식", r["category"])
	}
}

func TestToggleLikeRecipe(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)

	body := map[string]interface{}{
		"id":     "recipe-1",
		"title":  "김치찌개",
		"author": "백주부",
	}

	w := PerformRequestWithToken(router, "POST", "/api/v1/liked-recipes/toggle", body, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["liked"])

	w = PerformRequestWithToken(router, "GET", "/api/v1/liked-recipes/recipe-1", nil, token)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["liked"])

	// Second toggle removes it.
	w = PerformRequestWithToken(router, "POST", "/api/v1/liked-recipes/toggle", body, token)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["liked"])
}

func TestUserRecipeCRUD(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)

	w := PerformRequestWithToken(router, "POST", "/api/v1/my/recipes", map[string]interface{}{
		"title":       "우리집 김치볶음밥",
		"description": "남은 김치로 만드는 한 끼",
		"category":    "한식",
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, ok := created["id"].(string)
	require.True(t, ok)
	assert.Contains(t, id, "user-recipe-")

	w = PerformRequestWithToken(router, "PUT", "/api/v1/my/recipes/"+id, map[string]interface{}{
		"title": "김치볶음밥 (개선판)",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequestWithToken(router, "GET", "/api/v1/my/recipes/"+id, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "김치볶음밥 (개선판)", got["title"])
	// Fields absent from the update survive.
	assert.Equal(t, "남은 김치로 만드는 한 끼", got["description"])

	w = PerformRequestWithToken(router, "DELETE", "/api/v1/my/recipes/"+id, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequestWithToken(router, "GET", "/api/v1/my/recipes/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateUserRecipeRequiresTitle(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)

	w := PerformRequestWithToken(router, "POST", "/api/v1/my/recipes", map[string]interface{}{
		"description": "제목 없는 레시피",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewRecipeOnce(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)

	w := PerformRequestWithToken(router, "POST", "/api/v1/recipes/recipe-1/review", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// A second review of the same recipe is rejected.
	w = PerformRequestWithToken(router, "POST", "/api/v1/recipes/recipe-1/review", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = PerformRequestWithToken(router, "GET", "/api/v1/recipes/recipe-1/review", nil, token)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["reviewed"])
}

func TestProgressTracksCompletions(t *testing.T) {
	router, _ := SetupTestRouter(t)
	token := LoginAndGetToken(t, router)

	w := PerformRequestWithToken(router, "POST", "/api/v1/recipes/recipe-2/complete", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	// Completing is idempotent.
	w = PerformRequestWithToken(router, "POST", "/api/v1/recipes/recipe-2/complete", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequestWithToken(router, "GET", "/api/v1/my/progress", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Completed []string `json:"completed"`
		Reviewed  []string `json:"reviewed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"recipe-2"}, resp.Completed)
	assert.Empty(t, resp.Reviewed)
}
