package order

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"Savoria-Backend/internal/utils/cache"
	"Savoria-Backend/internal/utils/storage"
	"Savoria-Backend/pkg/cart"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		Checkout(ctx context.Context, userID string, req domain.CheckoutRequest) (domain.OrderResponse, error)
		GetOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error)
		GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		CancelOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error)
		UpdateStatus(ctx context.Context, orderID string, newStatus string) (domain.OrderResponse, error)
		UploadReceipt(ctx context.Context, orderID string, userID string, req domain.UploadReceiptRequest) (string, error)
		GetStatistics(ctx context.Context) (domain.OrderStatisticsResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
		cartRepository  cart.CartRepository
		notifier        Notifier
		cache           cache.Client
		s3              storage.AwsS3
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	cartRepository cart.CartRepository,
	notifier Notifier,
	cacheClient cache.Client,
	s3 storage.AwsS3,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		cartRepository:  cartRepository,
		notifier:        notifier,
		cache:           cacheClient,
		s3:              s3,
	}
}

// Checkout converts the caller's cart into an order. Order items are value
// snapshots of the cart lines; the cart is emptied afterwards.
func (s *orderService) Checkout(ctx context.Context, userID string, req domain.CheckoutRequest) (domain.OrderResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	userCart, err := s.cartRepository.GetCartByUserID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrCartEmpty
		}
		return domain.OrderResponse{}, err
	}

	items, err := s.cartRepository.GetCartItems(ctx, userCart.ID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	if len(items) == 0 {
		return domain.OrderResponse{}, domain.ErrCartEmpty
	}

	summary := cart.SummarizeItems(items)

	order := &entities.Order{
		ID:              uuid.New(),
		UserID:          userUUID,
		CartID:          userCart.ID,
		Total:           summary.TotalPrice,
		Status:          domain.OrderStatusPending,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentNotes:    req.PaymentNotes,
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	for _, item := range items {
		if item.Food == nil {
			continue
		}
		orderItem := &entities.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			FoodName:  item.Food.Name,
			FoodPrice: item.Food.Price,
			Quantity:  item.Quantity,
			Subtotal:  domain.RoundCents(item.Food.Price * float64(item.Quantity)),
		}
		if err := s.orderRepository.CreateOrderItem(ctx, orderItem); err != nil {
			return domain.OrderResponse{}, err
		}
		order.Items = append(order.Items, orderItem)
	}

	if err := s.cartRepository.DeleteCartItems(ctx, userCart.ID); err != nil {
		return domain.OrderResponse{}, err
	}
	_ = s.cache.Delete(ctx, cache.KeyCart(userCart.ID.String()))

	if err := s.notifier.SendOrderConfirmation(order); err != nil {
		log.Printf("error sending order confirmation email for %s: %v", OrderNumber(order), err)
	}

	return orderResponse(order), nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	return orderResponse(order), nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, orderResponse(order))
	}
	return result, nil
}

// CancelOrder is the only path into the cancelled status, permitted from
// pending and paid only.
func (s *orderService) CancelOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusPaid {
		return domain.OrderResponse{}, domain.ErrOrderNotCancellable
	}

	if err := s.transition(ctx, order, domain.OrderStatusCancelled); err != nil {
		return domain.OrderResponse{}, err
	}
	return orderResponse(order), nil
}

// UpdateStatus moves an order forward through the status flow. Cancellation
// is rejected here; it has its own operation with its own precondition.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, newStatus string) (domain.OrderResponse, error) {
	if !domain.IsValidOrderStatus(newStatus) {
		return domain.OrderResponse{}, domain.ErrInvalidOrderStatus
	}

	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	if newStatus == order.Status {
		return orderResponse(order), nil
	}

	if newStatus == domain.OrderStatusCancelled {
		return domain.OrderResponse{}, domain.ErrOrderNotCancellable
	}
	if order.Status == domain.OrderStatusCancelled ||
		domain.OrderStatusRank(newStatus) < domain.OrderStatusRank(order.Status) {
		return domain.OrderResponse{}, domain.ErrBackwardTransition
	}

	if err := s.transition(ctx, order, newStatus); err != nil {
		return domain.OrderResponse{}, err
	}
	return orderResponse(order), nil
}

// transition applies a status change and its side effects in one place:
// first-time confirmation/delivery timestamps and the best-effort status
// mail. Callers have already validated the move.
func (s *orderService) transition(ctx context.Context, order *entities.Order, newStatus string) error {
	oldStatus := order.Status
	order.Status = newStatus

	now := time.Now()
	if newStatus == domain.OrderStatusConfirmed && order.ConfirmedAt == nil {
		order.ConfirmedAt = &now
	}
	if newStatus == domain.OrderStatusDelivered && order.DeliveredAt == nil {
		order.DeliveredAt = &now
	}

	if err := s.orderRepository.UpdateOrder(ctx, order); err != nil {
		order.Status = oldStatus
		return err
	}

	if err := s.notifier.SendStatusUpdate(order, oldStatus, newStatus); err != nil {
		log.Printf("error sending status update email for %s: %v", OrderNumber(order), err)
	}
	return nil
}

func (s *orderService) UploadReceipt(ctx context.Context, orderID string, userID string, req domain.UploadReceiptRequest) (string, error) {
	order, err := s.orderRepository.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrOrderNotFound
		}
		return "", err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("receipt-%s", order.ID.String()),
		req.Receipt,
		"receipts",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	order.ReceiptURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.orderRepository.UpdateOrder(ctx, order); err != nil {
		return "", err
	}
	return order.ReceiptURL, nil
}

func (s *orderService) GetStatistics(ctx context.Context) (domain.OrderStatisticsResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)

	stats := domain.OrderStatisticsResponse{}
	var err error

	if stats.TotalOrders, err = s.orderRepository.CountOrders(ctx, nil); err != nil {
		return stats, err
	}
	if stats.TodayOrders, err = s.orderRepository.CountOrders(ctx, &today); err != nil {
		return stats, err
	}
	if stats.WeekOrders, err = s.orderRepository.CountOrders(ctx, &weekAgo); err != nil {
		return stats, err
	}
	if stats.MonthOrders, err = s.orderRepository.CountOrders(ctx, &monthAgo); err != nil {
		return stats, err
	}
	if stats.PendingOrders, err = s.orderRepository.CountOrdersByStatus(ctx, domain.OrderStatusPending); err != nil {
		return stats, err
	}
	if stats.PreparingOrders, err = s.orderRepository.CountOrdersByStatus(ctx, domain.OrderStatusPreparing); err != nil {
		return stats, err
	}

	revenue, err := s.orderRepository.SumRevenue(ctx, []string{domain.OrderStatusDelivered, domain.OrderStatusReady})
	if err != nil {
		return stats, err
	}
	stats.TotalRevenue = domain.RoundCents(revenue)

	if stats.StatusBreakdown, err = s.orderRepository.StatusBreakdown(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}

// EstimatedDelivery projects a delivery time from the order's age and
// status. Terminal and cancelled orders have none.
func EstimatedDelivery(order *entities.Order) *time.Time {
	var wait time.Duration
	switch order.Status {
	case domain.OrderStatusPending:
		wait = 45 * time.Minute
	case domain.OrderStatusPaid:
		wait = 40 * time.Minute
	case domain.OrderStatusConfirmed:
		wait = 35 * time.Minute
	case domain.OrderStatusPreparing:
		wait = 20 * time.Minute
	case domain.OrderStatusReady:
		wait = 10 * time.Minute
	default:
		return nil
	}
	estimated := order.CreatedAt.Add(wait)
	return &estimated
}

func orderResponse(order *entities.Order) domain.OrderResponse {
	items := make([]domain.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, domain.OrderItemResponse{
			FoodName:  item.FoodName,
			FoodPrice: item.FoodPrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}

	return domain.OrderResponse{
		ID:                order.ID.String(),
		OrderNumber:       OrderNumber(order),
		Status:            order.Status,
		Total:             order.Total,
		CustomerName:      order.CustomerName,
		CustomerPhone:     order.CustomerPhone,
		CustomerEmail:     order.CustomerEmail,
		DeliveryAddress:   order.DeliveryAddress,
		ReceiptURL:        order.ReceiptURL,
		PaymentMethod:     order.PaymentMethod,
		PaymentNotes:      order.PaymentNotes,
		Items:             items,
		EstimatedDelivery: EstimatedDelivery(order),
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}
