package rest

import (
	"net/http"
	"strconv"

	"github.com/BartTuroShart/teller-connect-page/internal/config"
	"github.com/BartTuroShart/teller-connect-page/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CORSMiddleware возвращает middleware для обработки CORS. Разрешенный origin
// задается в конфигурации (по умолчанию *).
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware проставляет X-Request-ID каждому запросу
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// SetupCommonEndpoints добавляет общие endpoints (health, events, stats) к роутеру
func SetupCommonEndpoints(router *gin.Engine) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Events endpoint
	router.GET("/api/v1/events", func(c *gin.Context) {
		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
				limit = parsed
			}
		}
		events := logger.GetEvents(limit)
		c.JSON(http.StatusOK, gin.H{"events": events})
	})

	// Stats endpoint
	router.GET("/api/v1/stats", func(c *gin.Context) {
		stats := logger.GetStats()
		c.JSON(http.StatusOK, stats)
	})
}

// SetupRouter настраивает маршруты REST API
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger(), gin.Recovery())
	router.Use(CORSMiddleware(cfg.CORS.Origin))
	router.Use(RequestIDMiddleware())

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// Синхронизация
	router.POST("/api/teller/sync", handlers.HandleTellerSync)

	// Админская страница за Basic auth
	router.GET("/admin", AdminAuthMiddleware(cfg.Admin.User, cfg.Admin.Pass), handlers.HandleAdmin)

	// Sandbox endpoints для локальной разработки
	sandbox := router.Group("/api/v1/sandbox")
	{
		sandbox.GET("/accounts", handlers.HandleSandboxAccounts)
		sandbox.GET("/accounts/:account_id/transactions", handlers.HandleSandboxTransactions)
	}

	// Общие endpoints (health, events, stats)
	SetupCommonEndpoints(router)

	// Все остальное: 404 обычным текстом
	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})

	return router
}
