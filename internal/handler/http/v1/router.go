package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := JWTAuthMiddleware(h.identityManager, h.logger)

	// Маршруты приема GPS-сэмплов
	location := api.Group("/location", auth)
	{
		location.POST("/report", h.reportLocation)
		location.POST("/failure", h.reportFailure)
		location.POST("/retry", h.retryLocation)
		location.POST("/disconnect", h.disconnect)
	}

	// Маршрут чтения присутствия
	api.GET("/presence/:user_id", auth, h.getPresence)

	// Маршруты управления доступами и лентой зрителя
	shares := api.Group("/shares", auth)
	{
		shares.POST("", h.createShare)
		shares.GET("", h.listShares)
		shares.DELETE("/:viewer_email", h.revokeShare)
		shares.GET("/visible", h.listVisible)
		shares.GET("/visible/stream", h.streamVisible)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
