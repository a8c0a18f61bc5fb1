package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuscore/CMP-ResourceService/internal/domain"
	resourceRepo "github.com/campuscore/CMP-ResourceService/internal/infra/storage/resource"
	"github.com/campuscore/CMP-ResourceService/pkg/ptr"
)

// UseCase use case для получения сетки доступности ресурса на дату
type UseCase struct {
	bookingRepo  BookingRepository
	resourceRepo ResourceRepository
	window       Window
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resourceRepo ResourceRepository,
	window Window,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		window:       window,
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки доступности
// Чистое вычисление поверх каталога и бронирований: состояние слотов
// детерминировано и не зависит от порядка бронирований в выборке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: resource=%d, date=%s",
		req.ResourceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресурс
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("GetAvailability: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Получаем подтвержденные бронирования ресурса на дату
	filter := domain.ResourceBookingsFilter{
		ResourceID: req.ResourceID,
		Date:       &req.Date,
		Status:     ptr.Ptr(domain.StatusConfirmed),
	}

	bookings, err := uc.bookingRepo.GetByResourceWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Генерируем сетку слотов операционного окна
	grid, err := generateTimeGrid(uc.window)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate time grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time grid: %v", ErrInternal, err)
	}

	// 5. Вычисляем состояние каждого слота
	slots := computeSlotStates(resource, grid, bookings)

	uc.logger.Info("GetAvailability: computed %d slots for resource=%d, date=%s",
		len(slots), req.ResourceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ResourceID: req.ResourceID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
