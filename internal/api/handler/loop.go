package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nwatkins/driftloop/internal/catalog"
	"github.com/nwatkins/driftloop/internal/service"
)

// LoopHandler handles loop generation endpoints.
type LoopHandler struct {
	pipeline *service.PipelineService
}

// NewLoopHandler creates a new loop handler.
func NewLoopHandler(pipeline *service.PipelineService) *LoopHandler {
	return &LoopHandler{pipeline: pipeline}
}

// CreateLoopRequest is the body for POST /api/v1/loops.
type CreateLoopRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Sync   bool   `json:"sync"`
}

// CreateLoop handles POST /api/v1/loops. By default the run executes in the
// background and the pending record is returned; sync=true blocks until the
// winner is published and returns the full result.
func (h *LoopHandler) CreateLoop(c *gin.Context) {
	var req CreateLoopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	if req.Sync {
		result, err := h.pipeline.Run(c.Request.Context(), req.Prompt)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, service.ErrEmptyPrompt) {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	run, err := h.pipeline.StartRun(c.Request.Context(), req.Prompt)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrEmptyPrompt) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, run)
}

// GetLoop handles GET /api/v1/loops/:id.
func (h *LoopHandler) GetLoop(c *gin.Context) {
	run, err := h.pipeline.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}

// ListLoops handles GET /api/v1/loops.
func (h *LoopHandler) ListLoops(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	runs, err := h.pipeline.ListRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"runs":  runs,
		"total": len(runs),
	})
}

// ListTriggers handles GET /api/v1/triggers.
func (h *LoopHandler) ListTriggers(c *gin.Context) {
	triggers := catalog.Triggers()
	c.JSON(http.StatusOK, gin.H{
		"triggers": triggers,
		"total":    len(triggers),
	})
}
