package app

import (
	"gorm.io/gorm"

	"github.com/serp-response/serp-backend/internal/data/repos"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
)

type Repos struct {
	Location          repos.LocationRepo
	Address           repos.AddressRepo
	Resource          repos.ResourceRepo
	Emergency         repos.EmergencyRepo
	EmergencyResource repos.EmergencyResourceRepo
	QoSSession        repos.QoSSessionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Location:          repos.NewLocationRepo(db, log),
		Address:           repos.NewAddressRepo(db, log),
		Resource:          repos.NewResourceRepo(db, log),
		Emergency:         repos.NewEmergencyRepo(db, log),
		EmergencyResource: repos.NewEmergencyResourceRepo(db, log),
		QoSSession:        repos.NewQoSSessionRepo(db, log),
	}
}
