package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campuscore/CMP-ResourceService/internal/api/handlers"
	"github.com/campuscore/CMP-ResourceService/internal/api/middleware"
	updateBooking "github.com/campuscore/CMP-ResourceService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgBookingNotFound     = "бронирование не найдено"
	msgUserNotFound        = "пользователь не найден"
	msgForbidden           = "доступ запрещен"
	msgCannotEdit          = "отмененное бронирование нельзя редактировать"
	msgResourceUnavailable = "ресурс недоступен для бронирования"
	msgSlotConflict        = "интервал пересекается с существующим бронированием"
	msgInvalidInterval     = "некорректный временной интервал"
	msgInvalidBookingDate  = "некорректная дата бронирования"
	msgIdentityUnavailable = "сервис идентификации недоступен, повторите запрос позже"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrUserNotFound):
			h.logger.Warn("PUT /bookings/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrCannotEdit):
			h.logger.Warn("PUT /bookings/{id} - Booking cannot be edited: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotEdit)

		case errors.Is(err, updateBooking.ErrResourceUnavailable):
			h.logger.Warn("PUT /bookings/{id} - Resource unavailable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgResourceUnavailable)

		case errors.Is(err, updateBooking.ErrSlotConflict):
			h.logger.Warn("PUT /bookings/{id} - Slot conflict: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, updateBooking.ErrInvalidInterval):
			h.logger.Warn("PUT /bookings/{id} - Invalid interval: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, updateBooking.ErrInvalidDate):
			h.logger.Warn("PUT /bookings/{id} - Invalid booking date: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, updateBooking.ErrIdentityUnavailable):
			h.logger.Error("PUT /bookings/{id} - Identity service unavailable: user_id=%d", userID)
			handlers.RespondServiceUnavailable(w, msgIdentityUnavailable)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
