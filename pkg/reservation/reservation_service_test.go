package reservation

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReservationRepository struct {
	reservations map[uuid.UUID]*entities.Reservation
}

func newFakeReservationRepository() *fakeReservationRepository {
	return &fakeReservationRepository{reservations: make(map[uuid.UUID]*entities.Reservation)}
}

func isActive(status string) bool {
	return status == domain.ReservationStatusPending || status == domain.ReservationStatusConfirmed
}

func (r *fakeReservationRepository) CreateReservation(_ context.Context, reservation *entities.Reservation) error {
	r.reservations[reservation.ID] = reservation
	return nil
}

func (r *fakeReservationRepository) GetReservationByID(_ context.Context, id string) (*entities.Reservation, error) {
	resID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	reservation, ok := r.reservations[resID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return reservation, nil
}

func (r *fakeReservationRepository) UpdateReservation(_ context.Context, reservation *entities.Reservation) error {
	r.reservations[reservation.ID] = reservation
	return nil
}

func (r *fakeReservationRepository) GetReservationsByUser(_ context.Context, userID string) ([]*entities.Reservation, error) {
	var result []*entities.Reservation
	for _, reservation := range r.reservations {
		if reservation.UserID != nil && reservation.UserID.String() == userID {
			result = append(result, reservation)
		}
	}
	return result, nil
}

func (r *fakeReservationRepository) GetReservationsByEmail(_ context.Context, email string) ([]*entities.Reservation, error) {
	var result []*entities.Reservation
	for _, reservation := range r.reservations {
		if reservation.Email == email {
			result = append(result, reservation)
		}
	}
	return result, nil
}

func (r *fakeReservationRepository) SlotTaken(_ context.Context, date time.Time, timeSlot string) (bool, error) {
	for _, reservation := range r.reservations {
		if reservation.Date.Equal(date) && reservation.TimeSlot == timeSlot && isActive(reservation.Status) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservationRepository) GetBookedSlots(_ context.Context, date time.Time) ([]string, error) {
	var slots []string
	for _, reservation := range r.reservations {
		if reservation.Date.Equal(date) && isActive(reservation.Status) {
			slots = append(slots, reservation.TimeSlot)
		}
	}
	return slots, nil
}

func validRequest(date string, slot string) domain.CreateReservationRequest {
	return domain.CreateReservationRequest{
		Name:      "Alex Doe",
		Email:     "alex@example.com",
		Phone:     "555-0100",
		Date:      date,
		Time:      slot,
		PartySize: 4,
	}
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func TestCreateReservation(t *testing.T) {
	repo := newFakeReservationRepository()
	service := NewReservationService(repo)
	ctx := context.Background()

	res, err := service.CreateReservation(ctx, validRequest(tomorrow(), "18:00"), "")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)
	assert.Equal(t, "18:00", res.Time)
	assert.Len(t, repo.reservations, 1)
}

func TestCreateReservationPastDate(t *testing.T) {
	service := NewReservationService(newFakeReservationRepository())
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	_, err := service.CreateReservation(ctx, validRequest(yesterday, "18:00"), "")
	assert.ErrorIs(t, err, domain.ErrPastReservationDate)

	_, err = service.CreateReservation(ctx, validRequest("30-08-2026", "18:00"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidReservationDate)
}

func TestCreateReservationInvalidSlot(t *testing.T) {
	service := NewReservationService(newFakeReservationRepository())
	ctx := context.Background()

	_, err := service.CreateReservation(ctx, validRequest(tomorrow(), "15:30"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidTimeSlot)
}

func TestCreateReservationDoubleBooking(t *testing.T) {
	service := NewReservationService(newFakeReservationRepository())
	ctx := context.Background()

	date := tomorrow()
	_, err := service.CreateReservation(ctx, validRequest(date, "19:00"), "")
	require.NoError(t, err)

	_, err = service.CreateReservation(ctx, validRequest(date, "19:00"), "")
	assert.ErrorIs(t, err, domain.ErrTimeSlotTaken)

	// A different slot on the same date is still free.
	_, err = service.CreateReservation(ctx, validRequest(date, "20:00"), "")
	assert.NoError(t, err)
}

func TestCancelledReservationFreesSlot(t *testing.T) {
	repo := newFakeReservationRepository()
	service := NewReservationService(repo)
	ctx := context.Background()

	date := tomorrow()
	res, err := service.CreateReservation(ctx, validRequest(date, "19:00"), "")
	require.NoError(t, err)

	_, err = service.UpdateStatus(ctx, res.ID, domain.UpdateReservationStatusRequest{Status: domain.ReservationStatusCancelled})
	require.NoError(t, err)

	_, err = service.CreateReservation(ctx, validRequest(date, "19:00"), "")
	assert.NoError(t, err)
}

func TestAvailableTimes(t *testing.T) {
	repo := newFakeReservationRepository()
	service := NewReservationService(repo)
	ctx := context.Background()

	date := tomorrow()
	_, err := service.CreateReservation(ctx, validRequest(date, "18:00"), "")
	require.NoError(t, err)
	_, err = service.CreateReservation(ctx, validRequest(date, "11:00"), "")
	require.NoError(t, err)

	res, err := service.AvailableTimes(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, date, res.Date)
	assert.NotContains(t, res.AvailableTimes, "18:00")
	assert.NotContains(t, res.AvailableTimes, "11:00")
	assert.Len(t, res.AvailableTimes, len(domain.ReservationTimeSlots)-2)
}

func TestAvailableTimesPastDate(t *testing.T) {
	service := NewReservationService(newFakeReservationRepository())
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	res, err := service.AvailableTimes(ctx, yesterday)
	require.NoError(t, err)
	assert.Empty(t, res.AvailableTimes)

	_, err = service.AvailableTimes(ctx, "not-a-date")
	assert.ErrorIs(t, err, domain.ErrInvalidReservationDate)
}

func TestGetUserReservations(t *testing.T) {
	repo := newFakeReservationRepository()
	service := NewReservationService(repo)
	ctx := context.Background()

	userID := uuid.New()
	_, err := service.CreateReservation(ctx, validRequest(tomorrow(), "12:00"), userID.String())
	require.NoError(t, err)

	byUser, err := service.GetUserReservations(ctx, userID.String(), "")
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byEmail, err := service.GetUserReservations(ctx, "", "alex@example.com")
	require.NoError(t, err)
	assert.Len(t, byEmail, 1)

	none, err := service.GetUserReservations(ctx, "", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateStatusNotFound(t *testing.T) {
	service := NewReservationService(newFakeReservationRepository())
	ctx := context.Background()

	_, err := service.UpdateStatus(ctx, uuid.NewString(), domain.UpdateReservationStatusRequest{Status: domain.ReservationStatusConfirmed})
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}
