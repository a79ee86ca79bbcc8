package domain

import (
	"github.com/serp-response/serp-backend/internal/domain/fleet"
	"github.com/serp-response/serp-backend/internal/domain/geo"
	"github.com/serp-response/serp-backend/internal/domain/incident"
	"github.com/serp-response/serp-backend/internal/domain/qos"
)

type (
	Location = geo.Location
	Address  = geo.Address

	Resource       = fleet.Resource
	ResourceStatus = fleet.ResourceStatus
	ResourceType   = fleet.ResourceType

	Emergency         = incident.Emergency
	EmergencyType     = incident.EmergencyType
	Priority          = incident.Priority
	Status            = incident.Status
	EmergencyResource = incident.EmergencyResource

	QoSSession = qos.Session
)

const (
	ResourceStatusUnknown     = fleet.ResourceStatusUnknown
	ResourceStatusAvailable   = fleet.ResourceStatusAvailable
	ResourceStatusBusy        = fleet.ResourceStatusBusy
	ResourceStatusMaintenance = fleet.ResourceStatusMaintenance

	ResourceTypeUnknown   = fleet.ResourceTypeUnknown
	ResourceTypeAmbulance = fleet.ResourceTypeAmbulance
	ResourceTypePolice    = fleet.ResourceTypePolice
	ResourceTypeFiretruck = fleet.ResourceTypeFiretruck

	EmergencyTypeFire            = incident.EmergencyTypeFire
	EmergencyTypeMedical         = incident.EmergencyTypeMedical
	EmergencyTypeAccident        = incident.EmergencyTypeAccident
	EmergencyTypeNaturalDisaster = incident.EmergencyTypeNaturalDisaster
	EmergencyTypeOther           = incident.EmergencyTypeOther

	PriorityCritical = incident.PriorityCritical
	PriorityHigh     = incident.PriorityHigh
	PriorityMedium   = incident.PriorityMedium
	PriorityLow      = incident.PriorityLow

	StatusActive   = incident.StatusActive
	StatusPending  = incident.StatusPending
	StatusSolved   = incident.StatusSolved
	StatusArchived = incident.StatusArchived
)
