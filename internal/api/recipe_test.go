package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/promptchef/backend/internal/mocks"
	"github.com/pageza/promptchef/backend/internal/prompt"
	"github.com/pageza/promptchef/backend/internal/service"
)

func setupRecipeTestRouter(recipes *mocks.MockRecipeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewRecipeHandler(recipes).RegisterRoutes(router.Group("/api"))
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "/recipe", RoutePath(prompt.Plain))
	assert.Equal(t, "/zero-shot", RoutePath(prompt.ZeroShot))
	assert.Equal(t, "/chain-of-thought", RoutePath(prompt.ChainOfThought))
}

func TestGenerateRecipe(t *testing.T) {
	for _, s := range prompt.Strategies {
		t.Run(string(s), func(t *testing.T) {
			recipes := new(mocks.MockRecipeService)
			recipes.On("Generate", mock.Anything, s, "Tomato, Basil").
				Return("1. Recipe Name: Bruschetta\n", nil).Once()
			router := setupRecipeTestRouter(recipes)

			w := postJSON(router, "/api"+RoutePath(s), `{"ingredients":"Tomato, Basil"}`)

			require.Equal(t, http.StatusOK, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, map[string]string{"recipe": "1. Recipe Name: Bruschetta\n"}, resp)
			recipes.AssertExpectations(t)
		})
	}
}

func TestGenerateRecipeBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{}`},
		{"empty string", `{"ingredients":""}`},
		{"null", `{"ingredients":null}`},
		{"not a string", `{"ingredients":["Tomato","Basil"]}`},
		{"number", `{"ingredients":5}`},
		{"malformed json", `{"ingredients":`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes := new(mocks.MockRecipeService)
			router := setupRecipeTestRouter(recipes)

			w := postJSON(router, "/api/zero-shot", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Ingredients are required"}`, w.Body.String())
			recipes.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateRecipeMapsMissingIngredientsError(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	recipes.On("Generate", mock.Anything, prompt.Dynamic, "Eggs").Return("", service.ErrMissingIngredients)
	router := setupRecipeTestRouter(recipes)

	w := postJSON(router, "/api/dynamic", `{"ingredients":"Eggs"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Ingredients are required"}`, w.Body.String())
}

func TestGenerateRecipeRelaysWhitespaceIngredients(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	recipes.On("Generate", mock.Anything, prompt.Dynamic, "   ").Return("Any dish", nil).Once()
	router := setupRecipeTestRouter(recipes)

	w := postJSON(router, "/api/dynamic", `{"ingredients":"   "}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recipe":"Any dish"}`, w.Body.String())
	recipes.AssertExpectations(t)
}

func TestGenerateRecipeUpstreamFailure(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	upstream := &service.UpstreamError{Strategy: prompt.OneShot, Err: errors.New("API key expired")}
	recipes.On("Generate", mock.Anything, prompt.OneShot, "Eggs").Return("", upstream)
	router := setupRecipeTestRouter(recipes)

	w := postJSON(router, "/api/one-shot", `{"ingredients":"Eggs"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "API key")
}

func TestGenerateRecipeMethodNotRouted(t *testing.T) {
	router := setupRecipeTestRouter(new(mocks.MockRecipeService))

	req := httptest.NewRequest(http.MethodGet, "/api/recipe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
