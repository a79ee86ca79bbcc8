package repos

import (
	"github.com/serp-response/serp-backend/internal/data/repos/fleet"
	"github.com/serp-response/serp-backend/internal/data/repos/geo"
	"github.com/serp-response/serp-backend/internal/data/repos/incident"
	"github.com/serp-response/serp-backend/internal/data/repos/qos"
)

type (
	LocationRepo = geo.LocationRepo
	AddressRepo  = geo.AddressRepo

	ResourceRepo = fleet.ResourceRepo

	EmergencyRepo         = incident.EmergencyRepo
	EmergencyResourceRepo = incident.EmergencyResourceRepo

	QoSSessionRepo = qos.SessionRepo
)

var (
	NewLocationRepo = geo.NewLocationRepo
	NewAddressRepo  = geo.NewAddressRepo

	NewResourceRepo = fleet.NewResourceRepo

	NewEmergencyRepo         = incident.NewEmergencyRepo
	NewEmergencyResourceRepo = incident.NewEmergencyResourceRepo

	NewQoSSessionRepo = qos.NewSessionRepo
)
