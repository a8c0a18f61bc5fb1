package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	"github.com/campuscore/CMP-ResourceService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func confirmedBooking(t *testing.T, resourceID int64, start, end string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ResourceID: resourceID,
		StartTime:  mustTime(t, start),
		EndTime:    mustTime(t, end),
		Status:     domain.StatusConfirmed,
	}
}

func availableResource(id int64) *domain.Resource {
	return &domain.Resource{
		ID:     id,
		Name:   "Lab A",
		Type:   domain.TypeLab,
		Status: domain.ResourceAvailable,
	}
}

func TestGenerateTimeGrid(t *testing.T) {
	window := Window{
		OpenTime:    mustTime(t, "07:00"),
		CloseTime:   mustTime(t, "17:00"),
		StepMinutes: 30,
	}

	grid, err := generateTimeGrid(window)
	require.NoError(t, err)

	// 10 часов по 2 слота в час, close не включается
	require.Len(t, grid, 20)
	assert.Equal(t, "07:00", grid[0].String())
	assert.Equal(t, "07:30", grid[1].String())
	assert.Equal(t, "16:30", grid[len(grid)-1].String())
}

func TestGenerateTimeGrid_StepNotAlignedToClose(t *testing.T) {
	window := Window{
		OpenTime:    mustTime(t, "09:00"),
		CloseTime:   mustTime(t, "10:45"),
		StepMinutes: 30,
	}

	grid, err := generateTimeGrid(window)
	require.NoError(t, err)

	// Последний слот начинается до close, даже если шаг не кратен окну
	require.Len(t, grid, 4)
	assert.Equal(t, "10:30", grid[len(grid)-1].String())
}

func TestComputeSlotStates_BookedInterval(t *testing.T) {
	resource := availableResource(1)
	grid := []types.TimeString{
		mustTime(t, "08:30"),
		mustTime(t, "09:00"),
		mustTime(t, "09:30"),
		mustTime(t, "10:00"),
		mustTime(t, "10:30"),
		mustTime(t, "11:00"),
	}
	bookings := []*domain.Booking{
		confirmedBooking(t, 1, "09:00", "11:00"),
	}

	slots := computeSlotStates(resource, grid, bookings)

	assert.Equal(t, domain.SlotAvailable, slots[0].State) // 08:30
	assert.Equal(t, domain.SlotBooked, slots[1].State)    // 09:00
	assert.Equal(t, domain.SlotBooked, slots[2].State)    // 09:30
	assert.Equal(t, domain.SlotBooked, slots[3].State)    // 10:00
	assert.Equal(t, domain.SlotBooked, slots[4].State)    // 10:30
	// Интервал полуоткрытый: слот 11:00 свободен
	assert.Equal(t, domain.SlotAvailable, slots[5].State)
}

func TestComputeSlotStates_MaintenanceDominatesBooked(t *testing.T) {
	resource := availableResource(1)
	resource.Status = domain.ResourceUnderMaintenance

	grid := []types.TimeString{
		mustTime(t, "09:00"),
		mustTime(t, "09:30"),
	}
	bookings := []*domain.Booking{
		confirmedBooking(t, 1, "09:00", "10:00"),
	}

	slots := computeSlotStates(resource, grid, bookings)

	// under_maintenance сильнее booked для каждого слота
	for _, slot := range slots {
		assert.Equal(t, domain.SlotUnderMaintenance, slot.State)
	}
}

func TestComputeSlotStates_OrderIndependent(t *testing.T) {
	resource := availableResource(1)
	grid := []types.TimeString{
		mustTime(t, "09:00"),
		mustTime(t, "10:00"),
		mustTime(t, "11:00"),
	}

	forward := []*domain.Booking{
		confirmedBooking(t, 1, "09:00", "10:00"),
		confirmedBooking(t, 1, "11:00", "12:00"),
	}
	backward := []*domain.Booking{
		confirmedBooking(t, 1, "11:00", "12:00"),
		confirmedBooking(t, 1, "09:00", "10:00"),
	}

	assert.Equal(t,
		computeSlotStates(resource, grid, forward),
		computeSlotStates(resource, grid, backward),
	)
}

func TestComputeSlotStates_CancelledBookingIgnored(t *testing.T) {
	resource := availableResource(1)
	grid := []types.TimeString{mustTime(t, "09:00")}

	cancelled := confirmedBooking(t, 1, "09:00", "10:00")
	cancelled.Status = domain.StatusCancelled

	slots := computeSlotStates(resource, grid, []*domain.Booking{cancelled})
	assert.Equal(t, domain.SlotAvailable, slots[0].State)
}

func TestComputeSlotStates_OtherResourceBookingIgnored(t *testing.T) {
	resource := availableResource(1)
	grid := []types.TimeString{mustTime(t, "09:00")}

	other := confirmedBooking(t, 2, "09:00", "10:00")

	slots := computeSlotStates(resource, grid, []*domain.Booking{other})
	assert.Equal(t, domain.SlotAvailable, slots[0].State)
}

func TestComputeSlotStates_TouchingIntervals(t *testing.T) {
	resource := availableResource(1)
	grid := []types.TimeString{
		mustTime(t, "09:00"),
		mustTime(t, "10:00"),
		mustTime(t, "11:00"),
	}
	bookings := []*domain.Booking{
		confirmedBooking(t, 1, "09:00", "10:00"),
		confirmedBooking(t, 1, "10:00", "11:00"),
	}

	slots := computeSlotStates(resource, grid, bookings)

	assert.Equal(t, domain.SlotBooked, slots[0].State)
	assert.Equal(t, domain.SlotBooked, slots[1].State)
	assert.Equal(t, domain.SlotAvailable, slots[2].State)
}
