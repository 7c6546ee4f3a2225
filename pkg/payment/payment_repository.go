package payment

import (
	"Savoria-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PaymentRepository interface {
		CreateTransaction(ctx context.Context, tx *entities.PaymentTransaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error)
		UpdateTransaction(ctx context.Context, tx *entities.PaymentTransaction) error
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateTransaction(ctx context.Context, tx *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *paymentRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error) {
	var tx entities.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *paymentRepository) UpdateTransaction(ctx context.Context, tx *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}
