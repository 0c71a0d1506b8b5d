// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/shelfpilot/backend-go/internal/api/handlers"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/api/middleware"
	"github.com/andresuchdata/shelfpilot/backend-go/internal/service"
)

type Services struct {
	PlannerService *service.PlannerService
	OrderService   *service.OrderService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.PlannerService != nil {
			plannerHandler := handlers.NewPlannerHandler(services.PlannerService)
			plannerGroup := apiGroup.Group("/planner")
			{
				plannerGroup.GET("/suggestions", plannerHandler.GetSuggestions)
				plannerGroup.GET("/summary", plannerHandler.GetSummary)
			}
			apiGroup.GET("/items", plannerHandler.GetItems)
			apiGroup.POST("/items/:id/usage", plannerHandler.RecordUsage)
		}

		if services.OrderService != nil {
			orderHandler := handlers.NewOrderHandler(services.OrderService)
			orderGroup := apiGroup.Group("/orders")
			{
				orderGroup.POST("/auto-draft", orderHandler.AutoDraft)
				orderGroup.GET("", orderHandler.List)
				orderGroup.GET("/:id", orderHandler.Get)
				orderGroup.POST("/:id/send", orderHandler.MarkSent)
				orderGroup.POST("/:id/receipts", orderHandler.ApplyReceipts)
			}
			apiGroup.GET("/items/:id/ledger", orderHandler.GetItemLedger)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
