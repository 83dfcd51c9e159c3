package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestLogger(h.logger), Metrics())

	// Инциденты
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("", h.listIncidents)
		incidents.PATCH("/:id/status", h.setIncidentStatus)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	// SOS
	api.GET("/emergency-logs", h.listEmergencyLogs)
	sos := api.Group("/sos")
	{
		sos.POST("/draft", h.draftSOS)
		sos.POST("/transmit", h.transmitSOS)
	}

	// Панель безопасности и агенты
	safety := api.Group("/safety")
	{
		safety.POST("/refresh", h.refreshSafety)
		safety.GET("/status", h.safetyStatus)
	}
	agents := api.Group("/agents")
	{
		agents.GET("", h.listAgents)
		agents.POST("", h.deployAgent)
		agents.DELETE("/:id", h.terminateAgent)
	}
	api.POST("/agent/chat", h.chat)

	api.GET("/landmarks", h.landmarks)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
