package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderStatusFlow lists the forward progression of an order. Cancellation
// sits outside the flow and is only reachable from pending or paid.
var OrderStatusFlow = []string{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
}

var (
	MessageSuccessCheckout      = "order placed successfully"
	MessageSuccessGetOrder      = "order retrieved successfully"
	MessageSuccessGetOrders     = "orders retrieved successfully"
	MessageSuccessCancelOrder   = "order cancelled successfully"
	MessageSuccessUpdateStatus  = "order status updated successfully"
	MessageSuccessUploadReceipt = "payment receipt uploaded successfully"
	MessageSuccessGetOrderStats = "order statistics retrieved successfully"

	MessageFailedCheckout      = "failed to place order"
	MessageFailedGetOrder      = "failed to retrieve order"
	MessageFailedGetOrders     = "failed to retrieve orders"
	MessageFailedCancelOrder   = "failed to cancel order"
	MessageFailedUpdateStatus  = "failed to update order status"
	MessageFailedUploadReceipt = "failed to upload payment receipt"
	MessageFailedGetOrderStats = "failed to retrieve order statistics"

	ErrOrderNotFound       = errors.New("order not found")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrOrderNotCancellable = errors.New("order cannot be cancelled at this stage")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrBackwardTransition  = errors.New("order status cannot move backwards")
)

type (
	CheckoutRequest struct {
		CustomerName    string `json:"customer_name" validate:"required"`
		CustomerPhone   string `json:"customer_phone" validate:"required"`
		CustomerEmail   string `json:"customer_email" validate:"required,email"`
		DeliveryAddress string `json:"delivery_address" validate:"omitempty"`
		PaymentMethod   string `json:"payment_method" validate:"omitempty"`
		PaymentNotes    string `json:"payment_notes" validate:"omitempty"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}

	UploadReceiptRequest struct {
		Receipt *multipart.FileHeader `json:"receipt" form:"receipt" validate:"required"`
	}

	OrderItemResponse struct {
		FoodName  string  `json:"food_name"`
		FoodPrice float64 `json:"food_price"`
		Quantity  int     `json:"quantity"`
		Subtotal  float64 `json:"subtotal"`
	}

	OrderResponse struct {
		ID                string              `json:"id"`
		OrderNumber       string              `json:"order_number"`
		Status            string              `json:"status"`
		Total             float64             `json:"total"`
		CustomerName      string              `json:"customer_name"`
		CustomerPhone     string              `json:"customer_phone"`
		CustomerEmail     string              `json:"customer_email"`
		DeliveryAddress   string              `json:"delivery_address,omitempty"`
		ReceiptURL        string              `json:"receipt_url,omitempty"`
		PaymentMethod     string              `json:"payment_method,omitempty"`
		PaymentNotes      string              `json:"payment_notes,omitempty"`
		PaymentRedirect   string              `json:"payment_redirect_url,omitempty"`
		Items             []OrderItemResponse `json:"items"`
		EstimatedDelivery *time.Time          `json:"estimated_delivery,omitempty"`
		CreatedAt         time.Time           `json:"created_at"`
		UpdatedAt         time.Time           `json:"updated_at"`
	}

	OrderStatusBreakdown struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	OrderStatisticsResponse struct {
		TotalOrders     int64                  `json:"total_orders"`
		TodayOrders     int64                  `json:"today_orders"`
		WeekOrders      int64                  `json:"week_orders"`
		MonthOrders     int64                  `json:"month_orders"`
		PendingOrders   int64                  `json:"pending_orders"`
		PreparingOrders int64                  `json:"preparing_orders"`
		TotalRevenue    float64                `json:"total_revenue"`
		StatusBreakdown []OrderStatusBreakdown `json:"status_breakdown"`
	}
)

// IsValidOrderStatus reports whether s names a known status, cancelled
// included.
func IsValidOrderStatus(s string) bool {
	if s == OrderStatusCancelled {
		return true
	}
	return OrderStatusRank(s) >= 0
}

// OrderStatusRank returns the position of s in the forward flow, or -1 when
// s is not part of it.
func OrderStatusRank(s string) int {
	for i, status := range OrderStatusFlow {
		if status == s {
			return i
		}
	}
	return -1
}
