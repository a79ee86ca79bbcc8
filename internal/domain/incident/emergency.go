package incident

import (
	"time"

	"github.com/google/uuid"
)

type EmergencyType string

const (
	EmergencyTypeFire            EmergencyType = "Fire"
	EmergencyTypeMedical         EmergencyType = "Medical"
	EmergencyTypeAccident        EmergencyType = "Accident"
	EmergencyTypeNaturalDisaster EmergencyType = "Natural Disaster"
	EmergencyTypeOther           EmergencyType = "Other"
)

func (t EmergencyType) Valid() bool {
	switch t {
	case EmergencyTypeFire, EmergencyTypeMedical, EmergencyTypeAccident,
		EmergencyTypeNaturalDisaster, EmergencyTypeOther:
		return true
	}
	return false
}

type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusPending  Status = "Pending"
	StatusSolved   Status = "Solved"
	StatusArchived Status = "Archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusSolved, StatusArchived:
		return true
	}
	return false
}

// Emergency is an incident record. The assignment link table is authoritative
// for currently assigned resources; ResourceID/DestinationID and their
// location/address snapshots are a primary-responder convenience view only.
type Emergency struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"size:64;not null" json:"name"`
	Description string    `gorm:"size:512;not null" json:"description"`

	EmergencyType EmergencyType `gorm:"size:32;column:emergency_type;not null;default:'Other'" json:"emergency_type"`
	Priority      Priority      `gorm:"size:16;not null;default:'Medium'" json:"priority"`
	Status        Status        `gorm:"size:16;not null;default:'Active'" json:"status"`

	// Incident site.
	LocationEmergency *uuid.UUID `gorm:"type:uuid;column:location_emergency" json:"location_emergency"`
	AddressEmergency  *uuid.UUID `gorm:"type:uuid;column:address_emergency" json:"address_emergency"`

	// Primary assigned responder (legacy convenience view).
	ResourceID       *uuid.UUID `gorm:"type:uuid;column:resource_id" json:"resource_id"`
	LocationResource *uuid.UUID `gorm:"type:uuid;column:location_resource" json:"location_resource"`
	AddressResource  *uuid.UUID `gorm:"type:uuid;column:address_resource" json:"address_resource"`

	// Transport target, e.g. a hospital.
	DestinationID       *uuid.UUID `gorm:"type:uuid;column:destination_id" json:"destination_id"`
	LocationDestination *uuid.UUID `gorm:"type:uuid;column:location_destination" json:"location_destination"`
	AddressDestination  *uuid.UUID `gorm:"type:uuid;column:address_destination" json:"address_destination"`

	NameContact      string `gorm:"size:128;column:name_contact" json:"name_contact,omitempty"`
	TelephoneContact string `gorm:"size:128;column:telephone_contact" json:"telephone_contact,omitempty"`
	IDContact        string `gorm:"size:128;column:id_contact" json:"id_contact,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Emergency) TableName() string { return "emergency" }
