package resources

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	resourceRepo "github.com/campuscore/CMP-ResourceService/internal/infra/storage/resource"
	"github.com/campuscore/CMP-ResourceService/internal/integrations/identityservice"
	"github.com/campuscore/CMP-ResourceService/internal/service/resources/models"
)

type fakeResourceStore struct {
	resources map[int64]*domain.Resource
	nextID    int64
}

func (f *fakeResourceStore) Create(_ context.Context, resource *domain.Resource) (*domain.Resource, error) {
	f.nextID++
	resource.ID = f.nextID
	resource.CreatedAt = time.Now()
	resource.UpdatedAt = resource.CreatedAt
	f.resources[resource.ID] = resource
	return resource, nil
}

func (f *fakeResourceStore) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	resource, ok := f.resources[id]
	if !ok {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return resource, nil
}

func (f *fakeResourceStore) List(_ context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error) {
	result := make([]*domain.Resource, 0)
	for _, r := range f.resources {
		if filter.Type != nil && r.Type != *filter.Type {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.MinCapacity != nil && r.Capacity < *filter.MinCapacity {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeResourceStore) UpdateStatus(_ context.Context, id int64, status domain.ResourceStatus, notes *string, persons []string, nextMaintenance *time.Time) (*domain.Resource, error) {
	resource, ok := f.resources[id]
	if !ok {
		return nil, resourceRepo.ErrResourceNotFound
	}
	resource.Status = status
	resource.MaintenanceNotes = notes
	resource.MaintenancePersons = persons
	resource.NextMaintenance = nextMaintenance
	resource.UpdatedAt = time.Now()
	return resource, nil
}

type fakeIdentityClient struct {
	users map[int64]*identityservice.User
	err   error
}

func (f *fakeIdentityClient) GetUser(_ context.Context, userID int64) (*identityservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, identityservice.ErrUserNotFound
	}
	return user, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeResourceStore) {
	store := &fakeResourceStore{
		resources: map[int64]*domain.Resource{
			1: {
				ID:       1,
				Name:     "Lab A",
				Type:     domain.TypeLab,
				Capacity: 20,
				Location: "Building 3",
				Status:   domain.ResourceAvailable,
			},
			2: {
				ID:       2,
				Name:     "Van 1",
				Type:     domain.TypeVehicle,
				Capacity: 8,
				Location: "Garage",
				Status:   domain.ResourceUnderMaintenance,
			},
		},
		nextID: 2,
	}

	identity := &fakeIdentityClient{
		users: map[int64]*identityservice.User{
			1:  {ID: 1, Role: identityservice.RoleAdmin},
			42: {ID: 42, Role: identityservice.RoleStudent},
		},
	}

	return NewService(store, identity, nopLogger{}), store
}

func TestList_All(t *testing.T) {
	svc, _ := newTestService()

	result, err := svc.List(context.Background(), &models.ListResourcesRequest{})
	require.NoError(t, err)
	assert.Len(t, result.Resources, 2)
}

func TestList_FilterByType(t *testing.T) {
	svc, _ := newTestService()

	resourceType := "Lab"
	result, err := svc.List(context.Background(), &models.ListResourcesRequest{Type: &resourceType})
	require.NoError(t, err)
	require.Len(t, result.Resources, 1)
	assert.Equal(t, "Lab A", result.Resources[0].Name)
}

func TestList_FilterByMinCapacity(t *testing.T) {
	svc, _ := newTestService()

	minCapacity := 10
	result, err := svc.List(context.Background(), &models.ListResourcesRequest{MinCapacity: &minCapacity})
	require.NoError(t, err)
	require.Len(t, result.Resources, 1)
	assert.Equal(t, "Lab A", result.Resources[0].Name)
}

func TestList_InvalidType(t *testing.T) {
	svc, _ := newTestService()

	resourceType := "Spaceship"
	_, err := svc.List(context.Background(), &models.ListResourcesRequest{Type: &resourceType})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_Admin(t *testing.T) {
	svc, store := newTestService()

	result, err := svc.Create(context.Background(), &models.CreateResourceRequest{
		UserID:   1,
		Name:     "Auditorium B",
		Type:     "Auditorium",
		Capacity: 200,
		Location: "Main Building",
	})
	require.NoError(t, err)
	assert.Equal(t, "available", result.Status)
	assert.Equal(t, int64(3), result.ID)
	assert.Contains(t, store.resources, int64(3))
}

func TestCreate_NonAdminDenied(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Create(context.Background(), &models.CreateResourceRequest{
		UserID:   42,
		Name:     "Auditorium B",
		Type:     "Auditorium",
		Capacity: 200,
		Location: "Main Building",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Len(t, store.resources, 2)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc, _ := newTestService()

	cases := []models.CreateResourceRequest{
		{UserID: 1, Name: "", Type: "Lab", Capacity: 10, Location: "B1"},
		{UserID: 1, Name: "X", Type: "Spaceship", Capacity: 10, Location: "B1"},
		{UserID: 1, Name: "X", Type: "Lab", Capacity: 0, Location: "B1"},
		{UserID: 1, Name: "X", Type: "Lab", Capacity: 10, Location: ""},
	}

	for _, req := range cases {
		req := req
		_, err := svc.Create(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput, "request %+v", req)
	}
}

func TestUpdateStatus_Admin(t *testing.T) {
	svc, store := newTestService()

	notes := "Projector replacement"
	next := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateResourceStatusRequest{
		UserID:             1,
		Status:             "under_maintenance",
		MaintenanceNotes:   &notes,
		MaintenancePersons: []string{"facilities@campus.edu"},
		NextMaintenance:    &next,
	})
	require.NoError(t, err)
	assert.Equal(t, "under_maintenance", result.Status)
	require.NotNil(t, result.NextMaintenance)
	assert.Equal(t, "2024-03-01", *result.NextMaintenance)
	assert.Equal(t, domain.ResourceUnderMaintenance, store.resources[1].Status)
}

func TestUpdateStatus_NonAdminDenied(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateResourceStatusRequest{
		UserID: 42,
		Status: "under_maintenance",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.ResourceAvailable, store.resources[1].Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateResourceStatusRequest{
		UserID: 1,
		Status: "broken",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_ResourceNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), 999, &models.UpdateResourceStatusRequest{
		UserID: 1,
		Status: "available",
	})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUpdateStatus_IdentityUnavailable(t *testing.T) {
	svc, _ := newTestService()
	svc.identityClient = &fakeIdentityClient{err: identityservice.ErrServiceUnavailable}

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateResourceStatusRequest{
		UserID: 1,
		Status: "available",
	})
	assert.ErrorIs(t, err, ErrIdentityUnavailable)
}
