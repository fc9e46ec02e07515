package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Показатели панели
	reports := api.Group("/report", auth)
	{
		reports.GET("/summary", h.getSummary)
	}

	api.GET("/incidents", auth, h.listIncidents)

	// Управление набором данных
	datasets := api.Group("/datasets", auth)
	{
		datasets.POST("/generate", h.generateDataset)
		datasets.GET("/latest", h.getLatestRun)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
