package domain

import (
	"errors"
	"time"
)

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCompleted = "completed"
	ReservationStatusCancelled = "cancelled"
)

// ReservationTimeSlots is the fixed set of bookable start times, lunch and
// dinner service.
var ReservationTimeSlots = []string{
	"11:00", "12:00", "13:00", "14:00",
	"17:00", "18:00", "19:00", "20:00", "21:00",
}

var (
	MessageSuccessCreateReservation = "reservation created successfully"
	MessageSuccessGetAvailableTimes = "available times retrieved successfully"
	MessageSuccessGetReservations   = "reservations retrieved successfully"
	MessageSuccessUpdateReservation = "reservation updated successfully"

	MessageFailedCreateReservation = "failed to create reservation"
	MessageFailedGetAvailableTimes = "failed to retrieve available times"
	MessageFailedGetReservations   = "failed to retrieve reservations"
	MessageFailedUpdateReservation = "failed to update reservation"

	ErrReservationNotFound    = errors.New("reservation not found")
	ErrPastReservationDate    = errors.New("cannot make reservations for past dates")
	ErrInvalidReservationDate = errors.New("invalid date format")
	ErrInvalidTimeSlot        = errors.New("invalid time slot")
	ErrTimeSlotTaken          = errors.New("this time slot is already booked")
)

type (
	CreateReservationRequest struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Phone           string `json:"phone" validate:"required"`
		Date            string `json:"date" validate:"required"`
		Time            string `json:"time" validate:"required"`
		PartySize       int    `json:"party_size" validate:"required,min=1,max=20"`
		SpecialRequests string `json:"special_requests" validate:"omitempty"`
	}

	UpdateReservationStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	}

	ReservationResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Email           string    `json:"email"`
		Phone           string    `json:"phone"`
		Date            string    `json:"date"`
		Time            string    `json:"time"`
		PartySize       int       `json:"party_size"`
		SpecialRequests string    `json:"special_requests,omitempty"`
		Status          string    `json:"status"`
		CreatedAt       time.Time `json:"created_at"`
	}

	AvailableTimesResponse struct {
		Date           string   `json:"date"`
		AvailableTimes []string `json:"available_times"`
	}
)

// IsValidTimeSlot reports whether t is one of the fixed reservation slots.
func IsValidTimeSlot(t string) bool {
	for _, slot := range ReservationTimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
