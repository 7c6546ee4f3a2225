package reservation

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"Savoria-Backend/internal/utils/mailing"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type (
	ReservationService interface {
		CreateReservation(ctx context.Context, req domain.CreateReservationRequest, userID string) (domain.ReservationResponse, error)
		AvailableTimes(ctx context.Context, dateStr string) (domain.AvailableTimesResponse, error)
		GetUserReservations(ctx context.Context, userID string, email string) ([]domain.ReservationResponse, error)
		UpdateStatus(ctx context.Context, id string, req domain.UpdateReservationStatusRequest) (domain.ReservationResponse, error)
	}

	reservationService struct {
		reservationRepository ReservationRepository
	}
)

func NewReservationService(reservationRepository ReservationRepository) ReservationService {
	return &reservationService{reservationRepository: reservationRepository}
}

func (s *reservationService) CreateReservation(ctx context.Context, req domain.CreateReservationRequest, userID string) (domain.ReservationResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.ReservationResponse{}, domain.ErrInvalidReservationDate
	}

	if date.Before(today()) {
		return domain.ReservationResponse{}, domain.ErrPastReservationDate
	}

	if !domain.IsValidTimeSlot(req.Time) {
		return domain.ReservationResponse{}, domain.ErrInvalidTimeSlot
	}

	taken, err := s.reservationRepository.SlotTaken(ctx, date, req.Time)
	if err != nil {
		return domain.ReservationResponse{}, err
	}
	if taken {
		return domain.ReservationResponse{}, domain.ErrTimeSlotTaken
	}

	reservation := &entities.Reservation{
		ID:              uuid.New(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            date,
		TimeSlot:        req.Time,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
		Status:          domain.ReservationStatusPending,
	}

	if userID != "" {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return domain.ReservationResponse{}, domain.ErrParseUUID
		}
		reservation.UserID = &userUUID
	}

	if err := s.reservationRepository.CreateReservation(ctx, reservation); err != nil {
		return domain.ReservationResponse{}, err
	}

	return reservationResponse(reservation), nil
}

// AvailableTimes returns the fixed slot set minus active bookings on the
// given date. Past dates have no availability at all.
func (s *reservationService) AvailableTimes(ctx context.Context, dateStr string) (domain.AvailableTimesResponse, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return domain.AvailableTimesResponse{}, domain.ErrInvalidReservationDate
	}

	res := domain.AvailableTimesResponse{
		Date:           dateStr,
		AvailableTimes: []string{},
	}

	if date.Before(today()) {
		return res, nil
	}

	booked, err := s.reservationRepository.GetBookedSlots(ctx, date)
	if err != nil {
		return domain.AvailableTimesResponse{}, err
	}

	bookedSet := make(map[string]bool, len(booked))
	for _, slot := range booked {
		bookedSet[slot] = true
	}

	for _, slot := range domain.ReservationTimeSlots {
		if !bookedSet[slot] {
			res.AvailableTimes = append(res.AvailableTimes, slot)
		}
	}
	return res, nil
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID string, email string) ([]domain.ReservationResponse, error) {
	var (
		reservations []*entities.Reservation
		err          error
	)

	switch {
	case userID != "":
		reservations, err = s.reservationRepository.GetReservationsByUser(ctx, userID)
	case email != "":
		reservations, err = s.reservationRepository.GetReservationsByEmail(ctx, email)
	default:
		return []domain.ReservationResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	result := make([]domain.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		result = append(result, reservationResponse(reservation))
	}
	return result, nil
}

func (s *reservationService) UpdateStatus(ctx context.Context, id string, req domain.UpdateReservationStatusRequest) (domain.ReservationResponse, error) {
	reservation, err := s.reservationRepository.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReservationResponse{}, domain.ErrReservationNotFound
		}
		return domain.ReservationResponse{}, err
	}

	if reservation.Status == req.Status {
		return reservationResponse(reservation), nil
	}

	reservation.Status = req.Status
	if err := s.reservationRepository.UpdateReservation(ctx, reservation); err != nil {
		return domain.ReservationResponse{}, err
	}

	if req.Status == domain.ReservationStatusConfirmed {
		body := fmt.Sprintf(
			"<p>Dear %s,</p><p>Your reservation for %s at %s (party of %d) has been confirmed.</p><p>See you soon!</p>",
			reservation.Name, reservation.Date.Format(dateLayout), reservation.TimeSlot, reservation.PartySize,
		)
		if err := mailing.SendMail(reservation.Email, "Reservation Confirmed", body); err != nil {
			log.Printf("error sending reservation confirmation email: %v", err)
		}
	}

	return reservationResponse(reservation), nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func reservationResponse(reservation *entities.Reservation) domain.ReservationResponse {
	return domain.ReservationResponse{
		ID:              reservation.ID.String(),
		Name:            reservation.Name,
		Email:           reservation.Email,
		Phone:           reservation.Phone,
		Date:            reservation.Date.Format(dateLayout),
		Time:            reservation.TimeSlot,
		PartySize:       reservation.PartySize,
		SpecialRequests: reservation.SpecialRequests,
		Status:          reservation.Status,
		CreatedAt:       reservation.CreatedAt,
	}
}
