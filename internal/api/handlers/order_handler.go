// backend-go/internal/api/handlers/order_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/domain"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/purchase"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type autoDraftRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
	Source      string `json:"source"`
	Notes       string `json:"notes"`
}

// AutoDraft runs the velocity forecast over the workspace and persists one
// draft per supplier with qualifying items. Zero drafts is a normal answer.
func (h *OrderHandler) AutoDraft(c *gin.Context) {
	var req autoDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	drafts, err := h.orders.AutoDraft(c.Request.Context(), req.WorkspaceID, req.Source, req.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build drafts"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"drafts": drafts,
		"count":  len(drafts),
	})
}

// List returns the workspace's orders, optionally filtered by ?status=.
func (h *OrderHandler) List(c *gin.Context) {
	workspaceID, ok := requireWorkspace(c)
	if !ok {
		return
	}

	var status *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := domain.ParseOrderStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		status = &parsed
	}

	orders, err := h.orders.List(c.Request.Context(), workspaceID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Get returns one order with its lines.
func (h *OrderHandler) Get(c *gin.Context) {
	workspaceID, ok := requireWorkspace(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.Get(c.Request.Context(), workspaceID, orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

type markSentRequest struct {
	WorkspaceID string `json:"workspace_id" binding:"required"`
}

// MarkSent advances a draft to Sent.
func (h *OrderHandler) MarkSent(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req markSentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.orders.MarkSent(c.Request.Context(), req.WorkspaceID, orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

type applyReceiptsRequest struct {
	WorkspaceID string         `json:"workspace_id" binding:"required"`
	Actor       string         `json:"actor"`
	Receipts    map[string]int `json:"receipts" binding:"required"` // line id -> units
}

// ApplyReceipts records a partial or complete delivery against an order.
func (h *OrderHandler) ApplyReceipts(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req applyReceiptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	receivedByLine := make(map[uuid.UUID]int, len(req.Receipts))
	for rawID, units := range req.Receipts {
		lineID, err := uuid.Parse(rawID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line id: " + rawID})
			return
		}
		receivedByLine[lineID] = units
	}

	actor := strings.TrimSpace(req.Actor)
	if actor == "" {
		actor = "receiving"
	}

	order, err := h.orders.ApplyReceipts(c.Request.Context(), req.WorkspaceID, orderID, receivedByLine, actor, time.Now())
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetItemLedger returns recent audit entries for an item.
func (h *OrderHandler) GetItemLedger(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	entries, err := h.orders.ItemLedger(c.Request.Context(), itemID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch ledger"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, purchase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, purchase.ErrOrderNotReceivable):
		c.JSON(http.StatusConflict, gin.H{"error": "order is not receivable"})
	case errors.Is(err, purchase.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid order transition"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}
