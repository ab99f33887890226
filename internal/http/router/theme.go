package router

import (
	"github.com/gin-gonic/gin"

	"ashara.health/site/internal/http/handler"
)

func ThemeRouter(router *gin.RouterGroup, handler *handler.ThemeHandler) {
	router.POST("/theme", handler.Set)
	router.GET("/theme", handler.Get)
}
