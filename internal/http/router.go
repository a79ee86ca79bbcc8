package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/serp-response/serp-backend/internal/http/handlers"
	httpMW "github.com/serp-response/serp-backend/internal/http/middleware"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler    *httpH.HealthHandler
	EmergencyHandler *httpH.EmergencyHandler
	ResourceHandler  *httpH.ResourceHandler
	QoSHandler       *httpH.QoSHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Emergencies
		if cfg.EmergencyHandler != nil {
			api.GET("/emergencies", cfg.EmergencyHandler.List)
			api.POST("/emergencies", cfg.EmergencyHandler.Create)
			api.GET("/emergencies/:id", cfg.EmergencyHandler.Get)
			api.PATCH("/emergencies/:id", cfg.EmergencyHandler.Update)
			api.DELETE("/emergencies/:id", cfg.EmergencyHandler.Delete)
			api.POST("/emergencies/:id/assign", cfg.EmergencyHandler.AssignResources)
		}

		// Resources
		if cfg.ResourceHandler != nil {
			api.GET("/resources", cfg.ResourceHandler.List)
			api.POST("/resources", cfg.ResourceHandler.Create)
			api.GET("/resources/:id", cfg.ResourceHandler.Get)
			api.PATCH("/resources/:id", cfg.ResourceHandler.Update)
			api.DELETE("/resources/:id", cfg.ResourceHandler.Delete)
			api.GET("/resources/:id/assignments", cfg.ResourceHandler.ListAssignments)
			api.GET("/resources/:id/location", cfg.ResourceHandler.GetLocation)
		}

		// QoS / device gateway
		if cfg.QoSHandler != nil {
			api.POST("/resources/:id/qos", cfg.QoSHandler.Activate)
			api.DELETE("/resources/:id/qos", cfg.QoSHandler.Deactivate)
			api.GET("/resources/:id/device", cfg.QoSHandler.DeviceStatus)
			api.GET("/resources/:id/device/location", cfg.QoSHandler.DeviceLocation)
		}
	}

	return r
}
