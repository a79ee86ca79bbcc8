package geo

import (
	"time"

	"github.com/google/uuid"
)

// Address carries optional postal fields plus coordinates. Same ownership
// discipline as Location: never shared between unrelated entities.
type Address struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StreetNumber string    `gorm:"size:16;column:street_number" json:"street_number,omitempty"`
	StreetName   string    `gorm:"size:64;column:street_name" json:"street_name,omitempty"`
	Neighborhood string    `gorm:"size:64;column:neighborhood" json:"neighborhood,omitempty"`
	City         string    `gorm:"size:64;column:city" json:"city,omitempty"`
	State        string    `gorm:"size:64;column:state" json:"state,omitempty"`
	PostalCode   string    `gorm:"size:64;column:postal_code" json:"postal_code,omitempty"`
	Country      string    `gorm:"size:64;column:country" json:"country,omitempty"`
	CountryCode  string    `gorm:"size:64;column:country_code" json:"country_code,omitempty"`
	AddressLine1 string    `gorm:"size:128;column:address_line_1" json:"address_line_1,omitempty"`
	Latitude     *float64  `gorm:"column:latitude" json:"latitude"`
	Longitude    *float64  `gorm:"column:longitude" json:"longitude"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Address) TableName() string { return "address" }
