// backend-go/internal/api/handlers/planner_handler.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/repository"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/service"
)

type PlannerHandler struct {
	planner *service.PlannerService
}

func NewPlannerHandler(planner *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

// GetSuggestions returns the computed replenishment list for a workspace.
func (h *PlannerHandler) GetSuggestions(c *gin.Context) {
	workspaceID, ok := requireWorkspace(c)
	if !ok {
		return
	}

	suggestions, err := h.planner.Suggestions(c.Request.Context(), workspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute suggestions"})
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// GetSummary returns urgency tier counts for a workspace.
func (h *PlannerHandler) GetSummary(c *gin.Context) {
	workspaceID, ok := requireWorkspace(c)
	if !ok {
		return
	}

	summary, err := h.planner.Summary(c.Request.Context(), workspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetItems returns the workspace catalog.
func (h *PlannerHandler) GetItems(c *gin.Context) {
	workspaceID, ok := requireWorkspace(c)
	if !ok {
		return
	}

	items, err := h.planner.ListItems(c.Request.Context(), workspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

type recordUsageRequest struct {
	WorkspaceID string  `json:"workspace_id" binding:"required"`
	Usage       float64 `json:"usage"`
}

// RecordUsage appends one day's usage sample to an item.
func (h *PlannerHandler) RecordUsage(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req recordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.planner.RecordUsage(c.Request.Context(), req.WorkspaceID, itemID, req.Usage)
	if err != nil {
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record usage"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func requireWorkspace(c *gin.Context) (string, bool) {
	workspaceID := strings.TrimSpace(c.Query("workspace"))
	if workspaceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workspace is required"})
		return "", false
	}
	return workspaceID, true
}
