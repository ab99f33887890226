package router

import (
	"github.com/gin-gonic/gin"

	"ashara.health/site/internal/http/handler"
)

func ContactRouter(router *gin.RouterGroup, handler *handler.ContactHandler) {
	router.POST("/contact", handler.Submit)
	router.GET("/contact", handler.MethodNotAllowed)
}
