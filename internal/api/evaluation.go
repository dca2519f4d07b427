package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/promptchef/backend/internal/models"
	"github.com/pageza/promptchef/backend/internal/service"
	"github.com/pageza/promptchef/backend/internal/types"
)

// EvaluationHandler runs the evaluation suite and serves stored runs
type EvaluationHandler struct {
	evaluationService service.IEvaluationService
	historyService    service.IHistoryService
	reportArchive     service.IReportArchive
}

// NewEvaluationHandler creates a new EvaluationHandler instance.
// history and archive may be nil, in which case runs are not kept.
func NewEvaluationHandler(evaluationService service.IEvaluationService, history service.IHistoryService, archive service.IReportArchive) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
		historyService:    history,
		reportArchive:     archive,
	}
}

// RegisterRoutes mounts POST /evaluate behind runMiddleware and, when history is
// enabled, the read-only history endpoints behind readMiddleware
func (h *EvaluationHandler) RegisterRoutes(router *gin.RouterGroup, runMiddleware, readMiddleware []gin.HandlerFunc) {
	router.POST("/evaluate", append(append([]gin.HandlerFunc{}, runMiddleware...), h.Evaluate)...)

	if h.historyService == nil {
		return
	}

	evaluations := router.Group("/evaluations")
	evaluations.Use(readMiddleware...)
	{
		evaluations.GET("", h.ListEvaluations)
		evaluations.GET("/:id", h.GetEvaluation)
		evaluations.GET("/:id/report", h.GetEvaluationReport)
	}
}

// Evaluate runs every evaluation case and returns the per-case verdicts
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	run := h.evaluationService.Run(c.Request.Context())
	if run.Failed > 0 {
		log.Printf("Evaluation run %s finished with %d failed cases", run.ID, run.Failed)
	}

	h.persist(context.WithoutCancel(c.Request.Context()), run)

	c.JSON(http.StatusOK, types.EvaluateResponse{EvaluationResults: run.Results})
}

// persist stores and archives run; failures are logged and never reach the client
func (h *EvaluationHandler) persist(ctx context.Context, run *models.EvaluationRun) {
	if h.historyService == nil {
		return
	}
	if err := h.historyService.SaveRun(ctx, run); err != nil {
		log.Printf("Failed to save evaluation run %s: %v", run.ID, err)
		return
	}

	if h.reportArchive == nil {
		return
	}
	key, err := h.reportArchive.Archive(ctx, run)
	if err != nil {
		log.Printf("Failed to archive evaluation run %s: %v", run.ID, err)
		return
	}
	if err := h.historyService.SetReportKey(ctx, run.ID, key); err != nil {
		log.Printf("Failed to record report key for run %s: %v", run.ID, err)
		return
	}
	run.ReportKey = key
}

// ListEvaluations returns the most recent stored runs
func (h *EvaluationHandler) ListEvaluations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	runs, err := h.historyService.ListRuns(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Error: %v", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: types.ErrMsgInternal})
		return
	}

	c.JSON(http.StatusOK, types.EvaluationListResponse{Evaluations: runs})
}

// GetEvaluation returns a single stored run
func (h *EvaluationHandler) GetEvaluation(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, types.EvaluationDetailResponse{Evaluation: run})
}

// GetEvaluationReport redirects to a short-lived link for the run's archived report
func (h *EvaluationHandler) GetEvaluationReport(c *gin.Context) {
	run, ok := h.loadRun(c)
	if !ok {
		return
	}

	if h.reportArchive == nil || run.ReportKey == "" {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "evaluation report not archived"})
		return
	}

	url, err := h.reportArchive.ReportURL(c.Request.Context(), run)
	if err != nil {
		log.Printf("Error: %v", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: types.ErrMsgInternal})
		return
	}

	c.Redirect(http.StatusFound, url)
}

func (h *EvaluationHandler) loadRun(c *gin.Context) (*models.EvaluationRun, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "invalid evaluation id"})
		return nil, false
	}

	run, err := h.historyService.GetRun(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "evaluation not found"})
			return nil, false
		}
		log.Printf("Error: %v", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: types.ErrMsgInternal})
		return nil, false
	}
	return run, true
}
