package order

import (
	"Savoria-Backend/entities"
	"Savoria-Backend/internal/utils/mailing"
	"fmt"
	"strings"
)

var statusMessages = map[string]string{
	"paid":      "Your payment has been received and confirmed.",
	"confirmed": "Your order has been confirmed and is being prepared.",
	"preparing": "Your order is currently being prepared by our kitchen.",
	"ready":     "Your order is ready for pickup/delivery!",
	"delivered": "Your order has been delivered. Enjoy your meal!",
	"cancelled": "Your order has been cancelled. Please contact us if you have any questions.",
}

type (
	// Notifier sends customer-facing order mail. Every call is best-effort:
	// callers log failures and never propagate them.
	Notifier interface {
		SendOrderConfirmation(order *entities.Order) error
		SendStatusUpdate(order *entities.Order, oldStatus, newStatus string) error
	}

	mailNotifier struct{}
)

func NewMailNotifier() Notifier {
	return mailNotifier{}
}

func (mailNotifier) SendOrderConfirmation(order *entities.Order) error {
	subject := fmt.Sprintf("Order Confirmation - #%s", OrderNumber(order))

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Dear %s,</p>", order.CustomerName)
	b.WriteString("<p>Thank you for your order! Here are the details:</p>")
	fmt.Fprintf(&b, "<p>Order Number: #%s<br>Total: $%.2f<br>Status: %s</p>", OrderNumber(order), order.Total, order.Status)

	b.WriteString("<p>Items:</p><ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%dx %s - $%.2f</li>", item.Quantity, item.FoodName, item.Subtotal)
	}
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<p>Customer Details:<br>Name: %s<br>Phone: %s<br>Email: %s</p>",
		order.CustomerName, order.CustomerPhone, order.CustomerEmail)
	if order.DeliveryAddress != "" {
		fmt.Fprintf(&b, "<p>Delivery Address: %s</p>", order.DeliveryAddress)
	}

	b.WriteString("<p>You can track your order status at any time by visiting our website.</p>")
	b.WriteString("<p>Thank you for choosing our restaurant!<br>Best regards,<br>Restaurant Team</p>")

	return mailing.SendMail(order.CustomerEmail, subject, b.String())
}

func (mailNotifier) SendStatusUpdate(order *entities.Order, oldStatus, newStatus string) error {
	subject := fmt.Sprintf("Order Update - #%s", OrderNumber(order))

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Dear %s,</p>", order.CustomerName)
	fmt.Fprintf(&b, "<p>Your order #%s status has been updated.</p>", OrderNumber(order))
	fmt.Fprintf(&b, "<p>New Status: %s<br>%s</p>", newStatus, statusMessages[newStatus])
	b.WriteString("<p>You can track your order at any time by visiting our website.</p>")
	b.WriteString("<p>Thank you!<br>Restaurant Team</p>")

	return mailing.SendMail(order.CustomerEmail, subject, b.String())
}

// OrderNumber is the short human-facing order reference.
func OrderNumber(order *entities.Order) string {
	return "ORD-" + strings.ToUpper(order.ID.String()[:8])
}
