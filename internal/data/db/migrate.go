package db

import (
	types "github.com/serp-response/serp-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Coordinate records, created before their owners.
		&types.Location{},
		&types.Address{},

		// Entities.
		&types.Resource{},
		&types.Emergency{},

		// Assignment link (authoritative for current assignment).
		&types.EmergencyResource{},

		// Gateway session tracking.
		&types.QoSSession{},
	)
}
