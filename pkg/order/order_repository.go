package order

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		CreateOrderItem(ctx context.Context, item *entities.OrderItem) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrderForUser(ctx context.Context, id string, userID string) (*entities.Order, error)
		GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error)
		UpdateOrder(ctx context.Context, order *entities.Order) error

		CountOrders(ctx context.Context, since *time.Time) (int64, error)
		CountOrdersByStatus(ctx context.Context, status string) (int64, error)
		SumRevenue(ctx context.Context, statuses []string) (float64, error)
		StatusBreakdown(ctx context.Context) ([]domain.OrderStatusBreakdown, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) CreateOrderItem(ctx context.Context, item *entities.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrderForUser(ctx context.Context, id string, userID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) CountOrders(ctx context.Context, since *time.Time) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Order{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *orderRepository) CountOrdersByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *orderRepository) SumRevenue(ctx context.Context, statuses []string) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Select("SUM(total)").
		Where("status IN ?", statuses).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *orderRepository) StatusBreakdown(ctx context.Context) ([]domain.OrderStatusBreakdown, error) {
	var breakdown []domain.OrderStatusBreakdown
	err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Select("status, COUNT(id) as count").
		Group("status").
		Order("status asc").
		Scan(&breakdown).Error
	return breakdown, err
}
