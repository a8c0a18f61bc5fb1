package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	bookingRepo "github.com/campuscore/CMP-ResourceService/internal/infra/storage/booking"
	identityClient "github.com/campuscore/CMP-ResourceService/internal/integrations/identityservice"
	"github.com/campuscore/CMP-ResourceService/pkg/ptr"
)

// UseCase use case для редактирования бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	resourceRepo   ResourceRepository
	identityClient IdentityServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		resourceRepo:   resourceRepo,
		identityClient: identityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case редактирования бронирования
// Редактирование проходит тот же цикл проверки пересечений, что и создание,
// но само редактируемое бронирование из проверки исключается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: user=%d, booking=%d, date=%s, interval=%s-%s",
		req.UserID, req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateInterval(req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("UpdateBooking: interval validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("UpdateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пользователя для проверки прав доступа
	user, err := uc.identityClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("UpdateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		if errors.Is(err, identityClient.ErrServiceUnavailable) {
			uc.logger.Error("UpdateBooking: identity service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
		}
		uc.logger.Error("UpdateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 3. Проверки и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Редактировать может владелец или администратор
		if booking.BookedBy != user.ID && !user.IsAdmin() {
			uc.logger.Warn("UpdateBooking: user id=%d is not allowed to edit booking id=%d",
				user.ID, booking.ID)
			return ErrAccessDenied
		}

		// 3.3. Отмененное бронирование не редактируется
		if !booking.CanBeEdited() {
			uc.logger.Warn("UpdateBooking: booking id=%d has status %s and cannot be edited",
				booking.ID, booking.Status)
			return fmt.Errorf("%w: booking status is %s", ErrCannotEdit, booking.Status)
		}

		// 3.4. Ресурс должен оставаться доступным для бронирования
		resource, err := uc.resourceRepo.GetByID(txCtx, booking.ResourceID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get resource id=%d: %v", booking.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		if !resource.IsBookable() {
			uc.logger.Warn("UpdateBooking: resource id=%d is not bookable, status=%s",
				resource.ID, resource.Status)
			return fmt.Errorf("%w: resource status is %s", ErrResourceUnavailable, resource.Status)
		}

		// 3.5. Проверяем пересечения с другими бронированиями целевого дня (FOR UPDATE)
		filter := domain.ResourceBookingsFilter{
			ResourceID: booking.ResourceID,
			Date:       &req.Date,
			Status:     ptr.Ptr(domain.StatusConfirmed),
		}

		bookings, err := uc.bookingRepo.GetByResourceWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if conflict := findConflictingBooking(booking.ID, req.StartTime, req.EndTime, bookings); conflict != nil {
			uc.logger.Warn("UpdateBooking: slot conflict with booking id=%d (%s-%s)",
				conflict.ID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: booking id=%d (%s-%s)",
				ErrSlotConflict, conflict.ID, conflict.StartTime, conflict.EndTime)
		}

		// 3.6. Обновляем интервал
		updated, err := uc.bookingRepo.UpdateInterval(txCtx, booking.ID, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingOverlap) {
				return fmt.Errorf("%w: interval overlaps an existing booking", ErrSlotConflict)
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrCannotEdit
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		ResourceID:  result.ResourceID,
		BookingDate: result.BookingDate,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Status:      string(result.Status),
		BookedBy:    result.BookedBy,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
