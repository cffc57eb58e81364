package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичный список происшествий - единственная читающая точка
	api.GET("/incidents", h.listIncidents)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	// Административные маршруты за API-ключом
	admin := api.Group("/admin")
	admin.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.POST("/incidents", h.createIncident)
		admin.GET("/incidents/export", h.exportIncidents)
		admin.POST("/persons", h.createPerson)
		admin.POST("/organizations", h.createOrganization)
		admin.POST("/places", h.createPlace)
		admin.POST("/addresses", h.createAddress)

		admin.POST("/translate", h.translateField)
		admin.GET("/translations/:field", h.getTranslations)
		admin.DELETE("/translations/:field", h.clearTranslations)
	}
}
