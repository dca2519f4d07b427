package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/promptchef/backend/internal/prompt"
	"github.com/pageza/promptchef/backend/internal/service"
	"github.com/pageza/promptchef/backend/internal/types"
)

// RecipeHandler serves one POST endpoint per prompt strategy
type RecipeHandler struct {
	recipeService service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RoutePath returns the path a strategy is served under, relative to /api
func RoutePath(s prompt.Strategy) string {
	if s == prompt.Plain {
		return "/recipe"
	}
	return "/" + string(s)
}

// RegisterRoutes mounts every generation endpoint on router behind the given middleware
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, middleware ...gin.HandlerFunc) {
	for _, s := range prompt.Strategies {
		handlers := append(append([]gin.HandlerFunc{}, middleware...), h.Generate(s))
		router.POST(RoutePath(s), handlers...)
	}
}

// Generate returns the handler for one prompt strategy
func (h *RecipeHandler) Generate(strategy prompt.Strategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RecipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: types.ErrMsgIngredientsRequired})
			return
		}

		recipe, err := h.recipeService.Generate(c.Request.Context(), strategy, req.Ingredients)
		if err != nil {
			if errors.Is(err, service.ErrMissingIngredients) {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: types.ErrMsgIngredientsRequired})
				return
			}
			log.Printf("Error: %v", err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: types.ErrMsgInternal})
			return
		}

		c.JSON(http.StatusOK, types.RecipeResponse{Recipe: recipe})
	}
}
