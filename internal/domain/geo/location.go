package geo

import (
	"time"

	"github.com/google/uuid"
)

// Location is a plain geocoordinate record owned by exactly one Emergency or
// Resource. Identity is immutable; coordinates are mutable.
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Latitude  *float64  `gorm:"column:latitude" json:"latitude"`
	Longitude *float64  `gorm:"column:longitude" json:"longitude"`
	Accuracy  *float64  `gorm:"column:accuracy" json:"accuracy,omitempty"`
	Speed     *float64  `gorm:"column:speed" json:"speed,omitempty"`
	Heading   *float64  `gorm:"column:heading" json:"heading,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Location) TableName() string { return "location" }
