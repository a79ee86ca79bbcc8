package qos

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks a quality-of-service session created on the network gateway
// for a resource's device, so it can be deactivated when the emergency is
// solved or the resource is deleted.
type Session struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ResourceID uuid.UUID `gorm:"type:uuid;not null;index" json:"resource_id"`

	PhoneNumber string `gorm:"size:64;not null" json:"phone_number"`
	// ExternalID is the gateway's session identifier.
	ExternalID  string `gorm:"size:128;not null" json:"external_id"`
	Profile     string `gorm:"size:64;not null" json:"profile"`
	Duration    int    `gorm:"not null" json:"duration"`
	ServiceIPv4 string `gorm:"size:64" json:"service_ipv4,omitempty"`

	Active bool `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Session) TableName() string { return "qos_session" }
