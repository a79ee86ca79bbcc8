package app

import (
	httpH "github.com/serp-response/serp-backend/internal/http/handlers"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Emergency *httpH.EmergencyHandler
	Resource  *httpH.ResourceHandler
	QoS       *httpH.QoSHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Emergency: httpH.NewEmergencyHandler(log, serviceset.Emergency, serviceset.Assignment),
		Resource:  httpH.NewResourceHandler(log, serviceset.Resource, serviceset.Assignment),
		QoS:       httpH.NewQoSHandler(log, serviceset.QoS),
	}
}
