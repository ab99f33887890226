package router

import (
	"github.com/gin-gonic/gin"

	"ashara.health/site/internal/http/handler"
)

func ChatRouter(router *gin.RouterGroup, handler *handler.ChatHandler) {
	router.POST("/chat", handler.Chat)
}
