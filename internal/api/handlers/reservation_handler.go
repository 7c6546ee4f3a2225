package handlers

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/internal/api/presenters"
	"Savoria-Backend/pkg/reservation"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReservationHandler interface {
		CreateReservation(c *fiber.Ctx) error
		GetAvailableTimes(c *fiber.Ctx) error
		GetUserReservations(c *fiber.Ctx) error
		UpdateStatus(c *fiber.Ctx) error
	}

	reservationHandler struct {
		reservationService reservation.ReservationService
		validator          *validator.Validate
	}
)

func NewReservationHandler(reservationService reservation.ReservationService, validator *validator.Validate) ReservationHandler {
	return &reservationHandler{
		reservationService: reservationService,
		validator:          validator,
	}
}

func (h *reservationHandler) CreateReservation(c *fiber.Ctx) error {
	req := new(domain.CreateReservationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReservation, err)
	}

	// Reservations work for guests too; the user link is attached when the
	// caller happens to be logged in.
	userID, _ := c.Locals("user_id").(string)

	res, err := h.reservationService.CreateReservation(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTimeSlotTaken):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateReservation, err)
		case errors.Is(err, domain.ErrInvalidReservationDate),
			errors.Is(err, domain.ErrPastReservationDate),
			errors.Is(err, domain.ErrInvalidTimeSlot):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReservation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateReservation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReservation)
}

func (h *reservationHandler) GetAvailableTimes(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAvailableTimes, domain.ErrInvalidReservationDate)
	}

	res, err := h.reservationService.AvailableTimes(c.Context(), dateStr)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReservationDate) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAvailableTimes, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAvailableTimes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAvailableTimes)
}

func (h *reservationHandler) GetUserReservations(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	email := c.Query("email")

	res, err := h.reservationService.GetUserReservations(c.Context(), userID, email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReservations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReservations)
}

func (h *reservationHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(domain.UpdateReservationStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReservation, err)
	}

	res, err := h.reservationService.UpdateStatus(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateReservation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateReservation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateReservation)
}
