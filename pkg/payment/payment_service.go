package payment

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"Savoria-Backend/pkg/order"
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		CreateTransaction(ctx context.Context, orderID string, userID string) (domain.PaymentTransactionResponse, error)
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	paymentService struct {
		paymentRepository PaymentRepository
		orderRepository   order.OrderRepository
		orderService      order.OrderService
		gateway           Gateway
	}
)

func NewPaymentService(
	paymentRepository PaymentRepository,
	orderRepository order.OrderRepository,
	orderService order.OrderService,
	gateway Gateway,
) PaymentService {
	return &paymentService{
		paymentRepository: paymentRepository,
		orderRepository:   orderRepository,
		orderService:      orderService,
		gateway:           gateway,
	}
}

// CreateTransaction opens a Snap payment session for a pending order and
// records the transaction so the webhook can resolve it later.
func (s *paymentService) CreateTransaction(ctx context.Context, orderID string, userID string) (domain.PaymentTransactionResponse, error) {
	ord, err := s.orderRepository.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PaymentTransactionResponse{}, domain.ErrOrderNotFound
		}
		return domain.PaymentTransactionResponse{}, err
	}

	if ord.Status != domain.OrderStatusPending {
		return domain.PaymentTransactionResponse{}, domain.ErrInvalidOrderStatus
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  ord.ID.String(),
			GrossAmt: int64(math.Round(ord.Total)),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: ord.CustomerName,
			Email: ord.CustomerEmail,
			Phone: ord.CustomerPhone,
		},
	}

	snapResp, err := s.gateway.CreateTransaction(snapReq)
	if err != nil || snapResp == nil {
		return domain.PaymentTransactionResponse{}, domain.ErrPaymentGateway
	}

	tx := &entities.PaymentTransaction{
		ID:          uuid.New(),
		OrderID:     ord.ID,
		GrossAmount: ord.Total,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
		Status:      domain.PaymentStatusPending,
	}
	if err := s.paymentRepository.CreateTransaction(ctx, tx); err != nil {
		return domain.PaymentTransactionResponse{}, err
	}

	return domain.PaymentTransactionResponse{
		OrderID:     ord.ID.String(),
		GrossAmount: ord.Total,
		RedirectURL: tx.RedirectURL,
		Status:      tx.Status,
	}, nil
}

// HandleWebhook verifies the notification against midtrans rather than
// trusting the payload, then moves the order to paid on settlement.
func (s *paymentService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	statusResp, err := s.gateway.CheckTransaction(req.OrderID)
	if err != nil || statusResp == nil {
		return domain.ErrPaymentGateway
	}

	tx, err := s.paymentRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	settled := false
	switch statusResp.TransactionStatus {
	case "capture":
		if statusResp.FraudStatus == "accept" {
			tx.Status = domain.PaymentStatusSettlement
			settled = true
		}
	case "settlement":
		tx.Status = domain.PaymentStatusSettlement
		settled = true
	case "deny":
		tx.Status = domain.PaymentStatusDeny
	case "cancel":
		tx.Status = domain.PaymentStatusCancel
	case "expire":
		tx.Status = domain.PaymentStatusExpire
	default:
		return nil
	}

	if err := s.paymentRepository.UpdateTransaction(ctx, tx); err != nil {
		return err
	}

	if settled {
		if _, err := s.orderService.UpdateStatus(ctx, req.OrderID, domain.OrderStatusPaid); err != nil {
			return err
		}
	}
	return nil
}
