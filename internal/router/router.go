package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/pageza/promptchef/backend/internal/api"
	"github.com/pageza/promptchef/backend/internal/middleware"
	"github.com/pageza/promptchef/backend/internal/prompt"
	"github.com/pageza/promptchef/backend/internal/service"
)

// Dependencies are the services the routes are built from.
// Every field except Recipes and Evaluations is optional.
type Dependencies struct {
	Recipes     service.IRecipeService
	Evaluations service.IEvaluationService
	History     service.IHistoryService
	Archive     service.IReportArchive
	Limiter     *middleware.RateLimiter
	RateLimit   int
	Tokens      middleware.TokenValidator
	StaticDir   string
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery(), middleware.CORS())

	router.GET("/health", api.HealthCheck)

	apiGroup := router.Group("/api")

	// Every route that reaches the upstream model shares one budget, charged per upstream call
	var upstream, evaluate []gin.HandlerFunc
	if deps.Limiter != nil {
		upstream = append(upstream, deps.Limiter.RateLimitMiddleware())
		evaluate = append(evaluate, deps.Limiter.WeightedRateLimitMiddleware(EvaluateCost()))
		api.RegisterRateLimitRoutes(apiGroup, deps.Limiter, deps.RateLimit)
	}

	var operator []gin.HandlerFunc
	if deps.Tokens != nil {
		operator = append(operator, middleware.OperatorAuth(deps.Tokens))
	}

	api.NewRecipeHandler(deps.Recipes).RegisterRoutes(apiGroup, upstream...)
	api.NewEvaluationHandler(deps.Evaluations, deps.History, deps.Archive).
		RegisterRoutes(apiGroup, evaluate, operator)

	if deps.StaticDir != "" {
		registerStatic(router, deps.StaticDir)
	}

	return router
}

// EvaluateCost is the number of upstream calls one evaluation run makes:
// a candidate generation and a judge call per case
func EvaluateCost() int {
	return 2 * len(prompt.EvaluationCases())
}

// registerStatic serves the front-end bundle for every path no API route claims
func registerStatic(router *gin.Engine, dir string) {
	fileServer := http.FileServer(http.Dir(dir))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err != nil || (info.IsDir() && !hasIndex(path)) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

func hasIndex(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "index.html"))
	return err == nil
}
