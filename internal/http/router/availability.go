package router

import (
	"github.com/gin-gonic/gin"

	"ashara.health/site/internal/http/handler"
)

func AvailabilityRouter(router *gin.RouterGroup, handler *handler.AvailabilityHandler) {
	router.GET("/availability", handler.List)
}
