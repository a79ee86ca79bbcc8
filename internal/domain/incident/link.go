package incident

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyResource is the many-to-many join between emergencies and
// resources. A row means "this resource is currently working this emergency".
// Rows are replaced wholesale on every re-assignment.
type EmergencyResource struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	EmergencyID uuid.UUID `gorm:"type:uuid;not null;index:idx_emergency_resource,unique,priority:1" json:"emergency_id"`
	ResourceID  uuid.UUID `gorm:"type:uuid;not null;index:idx_emergency_resource,unique,priority:2" json:"resource_id"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (EmergencyResource) TableName() string { return "emergency_resource" }
