package domain

import (
	"errors"
)

const (
	PaymentMethodMidtrans = "midtrans"

	PaymentStatusPending    = "pending"
	PaymentStatusSettlement = "settlement"
	PaymentStatusExpire     = "expire"
	PaymentStatusCancel     = "cancel"
	PaymentStatusDeny       = "deny"
)

var (
	MessageSuccessWebhook = "payment notification processed"
	MessageFailedWebhook  = "failed to process payment notification"

	ErrTransactionNotFound = errors.New("payment transaction not found")
	ErrPaymentGateway      = errors.New("payment gateway error")
)

type (
	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}

	PaymentTransactionResponse struct {
		OrderID     string  `json:"order_id"`
		GrossAmount float64 `json:"gross_amount"`
		RedirectURL string  `json:"redirect_url,omitempty"`
		Status      string  `json:"status"`
	}
)
