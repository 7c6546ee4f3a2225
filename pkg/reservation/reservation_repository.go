package reservation

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ReservationRepository interface {
		CreateReservation(ctx context.Context, reservation *entities.Reservation) error
		GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error)
		UpdateReservation(ctx context.Context, reservation *entities.Reservation) error
		GetReservationsByUser(ctx context.Context, userID string) ([]*entities.Reservation, error)
		GetReservationsByEmail(ctx context.Context, email string) ([]*entities.Reservation, error)
		SlotTaken(ctx context.Context, date time.Time, timeSlot string) (bool, error)
		GetBookedSlots(ctx context.Context, date time.Time) ([]string, error)
	}

	reservationRepository struct {
		db *gorm.DB
	}
)

// activeStatuses are the statuses that occupy a slot. Cancelled and
// completed reservations free it.
var activeStatuses = []string{
	domain.ReservationStatusPending,
	domain.ReservationStatusConfirmed,
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) CreateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id string) (*entities.Reservation, error) {
	var reservation entities.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) UpdateReservation(ctx context.Context, reservation *entities.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

func (r *reservationRepository) GetReservationsByUser(ctx context.Context, userID string) ([]*entities.Reservation, error) {
	var reservations []*entities.Reservation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc, time_slot asc").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) GetReservationsByEmail(ctx context.Context, email string) ([]*entities.Reservation, error) {
	var reservations []*entities.Reservation
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("date desc, time_slot asc").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) SlotTaken(ctx context.Context, date time.Time, timeSlot string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Reservation{}).
		Where("date = ? AND time_slot = ? AND status IN ?", date, timeSlot, activeStatuses).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reservationRepository) GetBookedSlots(ctx context.Context, date time.Time) ([]string, error) {
	var slots []string
	if err := r.db.WithContext(ctx).Model(&entities.Reservation{}).
		Where("date = ? AND status IN ?", date, activeStatuses).
		Pluck("time_slot", &slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}
