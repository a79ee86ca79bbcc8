package app

import (
	"gorm.io/gorm"

	"github.com/serp-response/serp-backend/internal/clients/nac"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
	"github.com/serp-response/serp-backend/internal/services"
)

type Services struct {
	Emergency  services.EmergencyService
	Resource   services.ResourceService
	Assignment services.AssignmentService
	QoS        services.QoSService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, gateway nac.Client) Services {
	log.Info("Wiring services...")

	qosService := services.NewQoSService(db, log, gateway, reposet.Resource, reposet.QoSSession)

	return Services{
		QoS: qosService,
		Emergency: services.NewEmergencyService(
			db, log,
			reposet.Emergency,
			reposet.Resource,
			reposet.Location,
			reposet.Address,
			reposet.EmergencyResource,
			qosService,
		),
		Resource: services.NewResourceService(
			db, log,
			reposet.Resource,
			reposet.Emergency,
			reposet.Location,
			reposet.Address,
			reposet.EmergencyResource,
			qosService,
		),
		Assignment: services.NewAssignmentService(
			db, log,
			reposet.Emergency,
			reposet.Resource,
			reposet.EmergencyResource,
		),
	}
}
