package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/serp-response/serp-backend/internal/clients/nac"
	"github.com/serp-response/serp-backend/internal/data/repos"
	"github.com/serp-response/serp-backend/internal/data/repos/testutil"
	types "github.com/serp-response/serp-backend/internal/domain"
)

// fakeQoS records deactivation calls so tests can assert on the Solved and
// deletion side effects without a gateway.
type fakeQoS struct {
	mu          sync.Mutex
	deactivated []uuid.UUID
}

func (f *fakeQoS) Activate(ctx context.Context, resourceID uuid.UUID, req ActivateQoSRequest) (*types.QoSSession, error) {
	return &types.QoSSession{ResourceID: resourceID, Profile: req.Profile, Active: true}, nil
}

func (f *fakeQoS) DeactivateForResource(ctx context.Context, resourceID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deactivated = append(f.deactivated, resourceID)
	return nil
}

func (f *fakeQoS) DeviceStatus(ctx context.Context, resourceID uuid.UUID) (*nac.Device, error) {
	return &nac.Device{Status: "CONNECTED"}, nil
}

func (f *fakeQoS) DeviceLocation(ctx context.Context, resourceID uuid.UUID, maxAge time.Duration) (*nac.DeviceLocation, error) {
	return &nac.DeviceLocation{Latitude: 41.38, Longitude: 2.17}, nil
}

func (f *fakeQoS) deactivatedIDs() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]uuid.UUID, len(f.deactivated))
	copy(out, f.deactivated)
	return out
}

type serviceEnv struct {
	db    *gorm.DB
	repos struct {
		location repos.LocationRepo
		address  repos.AddressRepo
		resource repos.ResourceRepo
		emerg    repos.EmergencyRepo
		link     repos.EmergencyResourceRepo
	}
	qos *fakeQoS

	emergencies EmergencyService
	resources   ResourceService
	assignments AssignmentService
}

// newServiceEnv wires the real services against the test database. Service
// transactions commit, so each test must register cleanup for the rows it
// creates.
func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)

	env := &serviceEnv{db: db, qos: &fakeQoS{}}
	env.repos.location = repos.NewLocationRepo(db, log)
	env.repos.address = repos.NewAddressRepo(db, log)
	env.repos.resource = repos.NewResourceRepo(db, log)
	env.repos.emerg = repos.NewEmergencyRepo(db, log)
	env.repos.link = repos.NewEmergencyResourceRepo(db, log)

	env.emergencies = NewEmergencyService(db, log, env.repos.emerg, env.repos.resource, env.repos.location, env.repos.address, env.repos.link, env.qos)
	env.resources = NewResourceService(db, log, env.repos.resource, env.repos.emerg, env.repos.location, env.repos.address, env.repos.link, env.qos)
	env.assignments = NewAssignmentService(db, log, env.repos.emerg, env.repos.resource, env.repos.link)
	return env
}

func (env *serviceEnv) cleanupEmergency(t *testing.T, emergencyID uuid.UUID) {
	t.Helper()
	t.Cleanup(func() {
		ctx := context.Background()
		var e types.Emergency
		if err := env.db.WithContext(ctx).Where("id = ?", emergencyID).First(&e).Error; err == nil {
			if e.LocationEmergency != nil {
				env.db.WithContext(ctx).Where("id = ?", *e.LocationEmergency).Delete(&types.Location{})
			}
			if e.AddressEmergency != nil {
				env.db.WithContext(ctx).Where("id = ?", *e.AddressEmergency).Delete(&types.Address{})
			}
		}
		env.db.WithContext(ctx).Where("emergency_id = ?", emergencyID).Delete(&types.EmergencyResource{})
		env.db.WithContext(ctx).Where("id = ?", emergencyID).Delete(&types.Emergency{})
	})
}

func (env *serviceEnv) cleanupResource(t *testing.T, resourceID uuid.UUID) {
	t.Helper()
	t.Cleanup(func() {
		ctx := context.Background()
		var r types.Resource
		if err := env.db.WithContext(ctx).Where("id = ?", resourceID).First(&r).Error; err == nil {
			for _, id := range []*uuid.UUID{r.ActualLocation, r.NormalLocation} {
				if id != nil {
					env.db.WithContext(ctx).Where("id = ?", *id).Delete(&types.Location{})
				}
			}
			for _, id := range []*uuid.UUID{r.ActualAddress, r.NormalAddress} {
				if id != nil {
					env.db.WithContext(ctx).Where("id = ?", *id).Delete(&types.Address{})
				}
			}
		}
		env.db.WithContext(ctx).Where("resource_id = ?", resourceID).Delete(&types.EmergencyResource{})
		env.db.WithContext(ctx).Where("resource_id = ?", resourceID).Delete(&types.QoSSession{})
		env.db.WithContext(ctx).Where("id = ?", resourceID).Delete(&types.Resource{})
	})
}

func (env *serviceEnv) createResource(t *testing.T, name string) uuid.UUID {
	t.Helper()
	id, err := env.resources.Create(context.Background(), CreateResourceRequest{
		Name:         name,
		ResourceType: types.ResourceTypeAmbulance,
		Status:       types.ResourceStatusAvailable,
		Latitude:     41.38,
		Longitude:    2.17,
		Telephone:    "+34600000001",
	})
	if err != nil {
		t.Fatalf("create resource %s: %v", name, err)
	}
	env.cleanupResource(t, id)
	return id
}

func (env *serviceEnv) createEmergency(t *testing.T, name string) uuid.UUID {
	t.Helper()
	id, err := env.emergencies.Create(context.Background(), CreateEmergencyRequest{
		Name:          name,
		Description:   "test emergency",
		Latitude:      41.40,
		Longitude:     2.15,
		EmergencyType: types.EmergencyTypeMedical,
		Priority:      types.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create emergency %s: %v", name, err)
	}
	env.cleanupEmergency(t, id)
	return id
}

func (env *serviceEnv) resourceStatus(t *testing.T, resourceID uuid.UUID) types.ResourceStatus {
	t.Helper()
	resources, err := env.repos.resource.GetByIDs(context.Background(), nil, []uuid.UUID{resourceID})
	if err != nil || len(resources) == 0 {
		t.Fatalf("fetch resource %s: %v", resourceID, err)
	}
	return resources[0].Status
}

func (env *serviceEnv) linkedResources(t *testing.T, emergencyID uuid.UUID) map[uuid.UUID]bool {
	t.Helper()
	links, err := env.repos.link.ListByEmergency(context.Background(), nil, emergencyID)
	if err != nil {
		t.Fatalf("list links: %v", err)
	}
	out := make(map[uuid.UUID]bool, len(links))
	for _, l := range links {
		out[l.ResourceID] = true
	}
	return out
}
