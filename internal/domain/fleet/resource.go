package fleet

import (
	"time"

	"github.com/google/uuid"
)

type ResourceStatus string

const (
	ResourceStatusUnknown     ResourceStatus = "Unknown"
	ResourceStatusAvailable   ResourceStatus = "Available"
	ResourceStatusBusy        ResourceStatus = "Busy"
	ResourceStatusMaintenance ResourceStatus = "Maintenance"
)

func (s ResourceStatus) Valid() bool {
	switch s {
	case ResourceStatusUnknown, ResourceStatusAvailable, ResourceStatusBusy, ResourceStatusMaintenance:
		return true
	}
	return false
}

type ResourceType string

const (
	ResourceTypeUnknown   ResourceType = "Unknown"
	ResourceTypeAmbulance ResourceType = "Ambulance"
	ResourceTypePolice    ResourceType = "Police"
	ResourceTypeFiretruck ResourceType = "Firetruck"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceTypeUnknown, ResourceTypeAmbulance, ResourceTypePolice, ResourceTypeFiretruck:
		return true
	}
	return false
}

// Resource is a responder unit. Status is Busy exactly while the unit is
// linked to a non-terminal emergency through the assignment link table; the
// invariant is enforced at assignment time, not continuously.
type Resource struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string       `gorm:"size:128;not null" json:"name"`
	ResourceType ResourceType `gorm:"size:32;column:resource_type;not null;default:'Unknown'" json:"resource_type"`

	// Current position and home base, each an owned Location/Address pair.
	ActualLocation *uuid.UUID `gorm:"type:uuid;column:actual_location" json:"actual_location"`
	ActualAddress  *uuid.UUID `gorm:"type:uuid;column:actual_address" json:"actual_address"`
	NormalLocation *uuid.UUID `gorm:"type:uuid;column:normal_location" json:"normal_location"`
	NormalAddress  *uuid.UUID `gorm:"type:uuid;column:normal_address" json:"normal_address"`

	Status ResourceStatus `gorm:"size:16;not null;default:'Unknown'" json:"status"`

	Responsible string `gorm:"size:128" json:"responsible,omitempty"`
	Telephone   string `gorm:"size:128" json:"telephone,omitempty"`
	Email       string `gorm:"size:128" json:"email,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Resource) TableName() string { return "resource" }
