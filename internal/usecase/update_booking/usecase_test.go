package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	bookingRepo "github.com/campuscore/CMP-ResourceService/internal/infra/storage/booking"
	"github.com/campuscore/CMP-ResourceService/internal/integrations/identityservice"
	"github.com/campuscore/CMP-ResourceService/pkg/types"
)

type fakeBookingStore struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingStore) GetByResourceWithFilter(_ context.Context, filter domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.ResourceID != filter.ResourceID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingStore) UpdateInterval(_ context.Context, id int64, date time.Time, start, end types.TimeString) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok || booking.Status != domain.StatusConfirmed {
		return nil, bookingRepo.ErrBookingNotFound
	}
	booking.BookingDate = date
	booking.StartTime = start
	booking.EndTime = end
	booking.UpdatedAt = time.Now()
	return booking, nil
}

type fakeResourceRepo struct {
	resource *domain.Resource
}

func (f *fakeResourceRepo) GetByID(_ context.Context, _ int64) (*domain.Resource, error) {
	return f.resource, nil
}

type fakeIdentityClient struct {
	user *identityservice.User
	err  error
}

func (f *fakeIdentityClient) GetUser(_ context.Context, _ int64) (*identityservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

var testDate = time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

func testStore(t *testing.T) *fakeBookingStore {
	t.Helper()
	return &fakeBookingStore{
		bookings: map[int64]*domain.Booking{
			100: {
				ID:          100,
				ResourceID:  1,
				BookingDate: testDate,
				StartTime:   mustTime(t, "09:00"),
				EndTime:     mustTime(t, "11:00"),
				Status:      domain.StatusConfirmed,
				BookedBy:    42,
			},
			101: {
				ID:          101,
				ResourceID:  1,
				BookingDate: testDate,
				StartTime:   mustTime(t, "13:00"),
				EndTime:     mustTime(t, "14:00"),
				Status:      domain.StatusConfirmed,
				BookedBy:    7,
			},
		},
	}
}

func newTestUseCase(store *fakeBookingStore, user *identityservice.User) *UseCase {
	uc := NewUseCase(
		store,
		&fakeResourceRepo{resource: &domain.Resource{
			ID:     1,
			Name:   "Lab A",
			Type:   domain.TypeLab,
			Status: domain.ResourceAvailable,
		}},
		&fakeIdentityClient{user: user},
		fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func owner() *identityservice.User {
	return &identityservice.User{ID: 42, Role: identityservice.RoleStudent}
}

func admin() *identityservice.User {
	return &identityservice.User{ID: 1, Role: identityservice.RoleAdmin}
}

func TestExecute_OwnerEditsBooking(t *testing.T) {
	store := testStore(t)
	uc := newTestUseCase(store, owner())

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: 100,
		Date:      testDate,
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "12:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "12:00", resp.EndTime.String())
}

func TestExecute_NewIntervalIgnoresOwnOldInterval(t *testing.T) {
	store := testStore(t)
	uc := newTestUseCase(store, owner())

	// Новый интервал 10:00-11:00 пересекается со СТАРЫМ интервалом
	// самого бронирования 09:00-11:00, это не конфликт
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: 100,
		Date:      testDate,
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "11:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime.String())
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	store := testStore(t)
	uc := newTestUseCase(store, owner())

	// 13:30-14:30 пересекается с чужим бронированием 13:00-14:00
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: 100,
		Date:      testDate,
		StartTime: mustTime(t, "13:30"),
		EndTime:   mustTime(t, "14:30"),
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_AdjacentToOtherBookingSucceeds(t *testing.T) {
	store := testStore(t)
	uc := newTestUseCase(store, owner())

	// 14:00-15:00 граничит с чужим 13:00-14:00, но не пересекается
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: 100,
		Date:      testDate,
		StartTime: mustTime(t, "14:00"),
		EndTime:   mustTime(t, "15:00"),
	})
	assert.NoError(t, err)
}

func TestExecute_NotOwnerDenied(t *testing.T) {
	store := testStore(t)
	uc := newTestUseCase(store, &identityservice.User{ID: 500, Role: identityservice.RoleStudent})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    500,
		BookingID: 100,
		Date:      testDate,
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "12:00"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_AdminEditsAnyBooking(t *testing.T) {
	store := testStore(t)
	uc := newTestUseCase(store, admin())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		BookingID: 100,
		Date:      testDate,
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "12:00"),
	})
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingNotEditable(t *testing.T) {
	store := testStore(t)
	cancelledAt := time.Now()
	store.bookings[100].Status = domain.StatusCancelled
	store.bookings[100].CancelledAt = &cancelledAt

	uc := newTestUseCase(store, owner())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: 100,
		Date:      testDate,
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "12:00"),
	})
	assert.ErrorIs(t, err, ErrCannotEdit)
}

func TestExecute_BookingNotFound(t *testing.T) {
	store := testStore(t)
	uc := newTestUseCase(store, owner())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: 999,
		Date:      testDate,
		StartTime: mustTime(t, "10:00"),
		EndTime:   mustTime(t, "12:00"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInterval(t *testing.T) {
	store := testStore(t)
	uc := newTestUseCase(store, owner())

	// Конец не позже начала
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		BookingID: 100,
		Date:      testDate,
		StartTime: mustTime(t, "12:00"),
		EndTime:   mustTime(t, "12:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
