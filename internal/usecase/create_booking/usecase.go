package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	bookingRepo "github.com/campuscore/CMP-ResourceService/internal/infra/storage/booking"
	resourceRepo "github.com/campuscore/CMP-ResourceService/internal/infra/storage/resource"
	identityClient "github.com/campuscore/CMP-ResourceService/internal/integrations/identityservice"
	"github.com/campuscore/CMP-ResourceService/pkg/ptr"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Проверка пересечений повторяется в момент коммита в сериализуемой
// транзакции: между отрисовкой сетки доступности и отправкой запроса
// другое бронирование могло занять слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, resource=%d, date=%s, start=%s, duration=%d",
		req.UserID, req.ResourceID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Вычисляем границу интервала (выход за сутки не допускается)
	endTime, err := computeEndTime(req.StartTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
		return nil, err
	}

	if err := validateInterval(req.StartTime, endTime); err != nil {
		uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем пользователя в identity service (атрибуция booked_by)
	user, err := uc.identityClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		if errors.Is(err, identityClient.ErrServiceUnavailable) {
			uc.logger.Error("CreateBooking: identity service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем проверку занятости и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем ресурс с блокировкой строки
		resource, err := uc.resourceRepo.GetByID(txCtx, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("CreateBooking: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		// 5.2. Ресурс на обслуживании или с ограниченным доступом бронировать нельзя
		if !resource.IsBookable() {
			uc.logger.Warn("CreateBooking: resource id=%d is not bookable, status=%s",
				resource.ID, resource.Status)
			return fmt.Errorf("%w: resource status is %s", ErrResourceUnavailable, resource.Status)
		}

		// 5.3. Получаем подтвержденные бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.ResourceBookingsFilter{
			ResourceID: req.ResourceID,
			Date:       &req.Date,
			Status:     ptr.Ptr(domain.StatusConfirmed),
		}

		bookings, err := uc.bookingRepo.GetByResourceWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.4. Проверяем пересечение с существующими бронированиями
		if conflict := findConflictingBooking(req.StartTime, endTime, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: slot conflict with booking id=%d (%s-%s)",
				conflict.ID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: booking id=%d (%s-%s)",
				ErrSlotConflict, conflict.ID, conflict.StartTime, conflict.EndTime)
		}

		// 5.5. Создаем бронирование
		booking := &domain.Booking{
			ResourceID:  req.ResourceID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     endTime,
			Status:      domain.StatusConfirmed,
			BookedBy:    user.ID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingOverlap) {
				return fmt.Errorf("%w: interval overlaps an existing booking", ErrSlotConflict)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

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
