package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"ashara.health/site/internal/availability"
	"ashara.health/site/internal/chat"
	"ashara.health/site/internal/contact"
	"ashara.health/site/internal/http/handler"
)

type RouterConfig struct {
	IsProduction bool
	ChatTimeout  time.Duration
}

// Dependencies carries the services the public API is built on.
type Dependencies struct {
	Chat         chat.Service
	Contact      contact.Service
	Availability availability.Provider
}

func SetupRoutes(router *gin.Engine, deps Dependencies, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		ChatRouter(api, handler.NewChatHandler(deps.Chat, cfg.ChatTimeout))
		ContactRouter(api, handler.NewContactHandler(deps.Contact))
		ThemeRouter(api, handler.NewThemeHandler(cfg.IsProduction))
		AvailabilityRouter(api, handler.NewAvailabilityHandler(deps.Availability))
	}
}
