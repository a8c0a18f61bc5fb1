package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	resourceRepo "github.com/campuscore/CMP-ResourceService/internal/infra/storage/resource"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	err        error
	lastFilter domain.ResourceBookingsFilter
}

func (f *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeResourceRepo struct {
	resource *domain.Resource
	err      error
}

func (f *fakeResourceRepo) GetByID(_ context.Context, _ int64) (*domain.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resource, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testWindow(t *testing.T) Window {
	t.Helper()
	return Window{
		OpenTime:    mustTime(t, "07:00"),
		CloseTime:   mustTime(t, "17:00"),
		StepMinutes: 30,
	}
}

func TestExecute_AvailabilityGrid(t *testing.T) {
	bookingRepository := &fakeBookingRepo{
		bookings: []*domain.Booking{
			confirmedBooking(t, 1, "09:00", "11:00"),
		},
	}
	resourceRepository := &fakeResourceRepo{resource: availableResource(1)}

	uc := NewUseCase(bookingRepository, resourceRepository, testWindow(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: 1,
		Date:       time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 20)

	states := make(map[string]domain.SlotState, len(resp.Slots))
	for _, slot := range resp.Slots {
		states[slot.StartTime.String()] = slot.State
	}

	assert.Equal(t, domain.SlotAvailable, states["08:30"])
	assert.Equal(t, domain.SlotBooked, states["09:00"])
	assert.Equal(t, domain.SlotBooked, states["10:30"])
	assert.Equal(t, domain.SlotAvailable, states["11:00"])

	// В фильтре запрошены только подтвержденные бронирования
	require.NotNil(t, bookingRepository.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *bookingRepository.lastFilter.Status)
}

func TestExecute_ResourceNotFound(t *testing.T) {
	bookingRepository := &fakeBookingRepo{}
	resourceRepository := &fakeResourceRepo{err: resourceRepo.ErrResourceNotFound}

	uc := NewUseCase(bookingRepository, resourceRepository, testWindow(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ResourceID: 99,
		Date:       time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeResourceRepo{}, testWindow(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ResourceID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ResourceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MaintenanceResource(t *testing.T) {
	resource := availableResource(1)
	resource.Status = domain.ResourceUnderMaintenance

	uc := NewUseCase(&fakeBookingRepo{}, &fakeResourceRepo{resource: resource}, testWindow(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID: 1,
		Date:       time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.Equal(t, domain.SlotUnderMaintenance, slot.State)
	}
}
