package payment

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGateway struct {
	snapResp    *snap.Response
	snapErr     error
	status      string
	fraudStatus string
	checkErr    error
}

func (g *fakeGateway) CreateTransaction(*snap.Request) (*snap.Response, error) {
	if g.snapErr != nil {
		return nil, g.snapErr
	}
	return g.snapResp, nil
}

func (g *fakeGateway) CheckTransaction(string) (*coreapi.TransactionStatusResponse, error) {
	if g.checkErr != nil {
		return nil, g.checkErr
	}
	return &coreapi.TransactionStatusResponse{
		TransactionStatus: g.status,
		FraudStatus:       g.fraudStatus,
	}, nil
}

type fakePaymentRepository struct {
	transactions map[string]*entities.PaymentTransaction
}

func newFakePaymentRepository() *fakePaymentRepository {
	return &fakePaymentRepository{transactions: make(map[string]*entities.PaymentTransaction)}
}

func (r *fakePaymentRepository) CreateTransaction(_ context.Context, tx *entities.PaymentTransaction) error {
	r.transactions[tx.OrderID.String()] = tx
	return nil
}

func (r *fakePaymentRepository) GetTransactionByOrderID(_ context.Context, orderID string) (*entities.PaymentTransaction, error) {
	tx, ok := r.transactions[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tx, nil
}

func (r *fakePaymentRepository) UpdateTransaction(_ context.Context, tx *entities.PaymentTransaction) error {
	r.transactions[tx.OrderID.String()] = tx
	return nil
}

type fakeOrderRepository struct {
	orders map[uuid.UUID]*entities.Order
}

func (r *fakeOrderRepository) CreateOrder(context.Context, *entities.Order) error { return nil }
func (r *fakeOrderRepository) CreateOrderItem(context.Context, *entities.OrderItem) error {
	return nil
}
func (r *fakeOrderRepository) GetOrderByID(_ context.Context, id string) (*entities.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	order, ok := r.orders[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}
func (r *fakeOrderRepository) GetOrderForUser(ctx context.Context, id string, userID string) (*entities.Order, error) {
	order, err := r.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.UserID.String() != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}
func (r *fakeOrderRepository) GetOrdersByUser(context.Context, string) ([]*entities.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepository) UpdateOrder(context.Context, *entities.Order) error { return nil }
func (r *fakeOrderRepository) CountOrders(context.Context, *time.Time) (int64, error) {
	return 0, nil
}
func (r *fakeOrderRepository) CountOrdersByStatus(context.Context, string) (int64, error) {
	return 0, nil
}
func (r *fakeOrderRepository) SumRevenue(context.Context, []string) (float64, error) { return 0, nil }
func (r *fakeOrderRepository) StatusBreakdown(context.Context) ([]domain.OrderStatusBreakdown, error) {
	return nil, nil
}

// fakeOrderService records status transitions requested by the webhook.
type fakeOrderService struct {
	transitions map[string]string
}

func newFakeOrderService() *fakeOrderService {
	return &fakeOrderService{transitions: make(map[string]string)}
}

func (s *fakeOrderService) Checkout(context.Context, string, domain.CheckoutRequest) (domain.OrderResponse, error) {
	return domain.OrderResponse{}, nil
}
func (s *fakeOrderService) GetOrder(context.Context, string, string) (domain.OrderResponse, error) {
	return domain.OrderResponse{}, nil
}
func (s *fakeOrderService) GetUserOrders(context.Context, string) ([]domain.OrderResponse, error) {
	return nil, nil
}
func (s *fakeOrderService) CancelOrder(context.Context, string, string) (domain.OrderResponse, error) {
	return domain.OrderResponse{}, nil
}
func (s *fakeOrderService) UpdateStatus(_ context.Context, orderID string, newStatus string) (domain.OrderResponse, error) {
	s.transitions[orderID] = newStatus
	return domain.OrderResponse{ID: orderID, Status: newStatus}, nil
}
func (s *fakeOrderService) UploadReceipt(context.Context, string, string, domain.UploadReceiptRequest) (string, error) {
	return "", nil
}
func (s *fakeOrderService) GetStatistics(context.Context) (domain.OrderStatisticsResponse, error) {
	return domain.OrderStatisticsResponse{}, nil
}

func setupPaymentTest(gateway *fakeGateway) (*fakePaymentRepository, *fakeOrderRepository, *fakeOrderService, PaymentService) {
	paymentRepo := newFakePaymentRepository()
	orderRepo := &fakeOrderRepository{orders: make(map[uuid.UUID]*entities.Order)}
	orderService := newFakeOrderService()
	service := NewPaymentService(paymentRepo, orderRepo, orderService, gateway)
	return paymentRepo, orderRepo, orderService, service
}

func pendingTransaction(paymentRepo *fakePaymentRepository) *entities.PaymentTransaction {
	tx := &entities.PaymentTransaction{
		ID:          uuid.New(),
		OrderID:     uuid.New(),
		GrossAmount: 34.97,
		Status:      domain.PaymentStatusPending,
	}
	paymentRepo.transactions[tx.OrderID.String()] = tx
	return tx
}

func TestCreateTransaction(t *testing.T) {
	gateway := &fakeGateway{snapResp: &snap.Response{Token: "snap-token", RedirectURL: "https://pay.example.com/abc"}}
	paymentRepo, orderRepo, _, service := setupPaymentTest(gateway)
	ctx := context.Background()

	userID := uuid.New()
	order := &entities.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        domain.OrderStatusPending,
		Total:         34.97,
		CustomerName:  "Alex Doe",
		CustomerEmail: "alex@example.com",
	}
	orderRepo.orders[order.ID] = order

	res, err := service.CreateTransaction(ctx, order.ID.String(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/abc", res.RedirectURL)
	assert.Equal(t, domain.PaymentStatusPending, res.Status)

	tx := paymentRepo.transactions[order.ID.String()]
	require.NotNil(t, tx)
	assert.Equal(t, "snap-token", tx.SnapToken)
	assert.InDelta(t, 34.97, tx.GrossAmount, 0.001)
}

func TestCreateTransactionNonPendingOrder(t *testing.T) {
	gateway := &fakeGateway{snapResp: &snap.Response{Token: "snap-token"}}
	_, orderRepo, _, service := setupPaymentTest(gateway)
	ctx := context.Background()

	userID := uuid.New()
	order := &entities.Order{ID: uuid.New(), UserID: userID, Status: domain.OrderStatusPaid}
	orderRepo.orders[order.ID] = order

	_, err := service.CreateTransaction(ctx, order.ID.String(), userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)

	_, err = service.CreateTransaction(ctx, uuid.NewString(), userID.String())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestCreateTransactionGatewayError(t *testing.T) {
	gateway := &fakeGateway{snapErr: domain.ErrPaymentGateway}
	_, orderRepo, _, service := setupPaymentTest(gateway)
	ctx := context.Background()

	userID := uuid.New()
	order := &entities.Order{ID: uuid.New(), UserID: userID, Status: domain.OrderStatusPending}
	orderRepo.orders[order.ID] = order

	_, err := service.CreateTransaction(ctx, order.ID.String(), userID.String())
	assert.ErrorIs(t, err, domain.ErrPaymentGateway)
}

func TestWebhookSettlementMarksOrderPaid(t *testing.T) {
	gateway := &fakeGateway{status: "settlement"}
	paymentRepo, _, orderService, service := setupPaymentTest(gateway)
	ctx := context.Background()

	tx := pendingTransaction(paymentRepo)
	orderID := tx.OrderID.String()

	err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{OrderID: orderID})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusSettlement, tx.Status)
	assert.Equal(t, domain.OrderStatusPaid, orderService.transitions[orderID])
}

func TestWebhookCaptureAcceptMarksOrderPaid(t *testing.T) {
	gateway := &fakeGateway{status: "capture", fraudStatus: "accept"}
	paymentRepo, _, orderService, service := setupPaymentTest(gateway)
	ctx := context.Background()

	tx := pendingTransaction(paymentRepo)
	orderID := tx.OrderID.String()

	err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{OrderID: orderID})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusSettlement, tx.Status)
	assert.Equal(t, domain.OrderStatusPaid, orderService.transitions[orderID])
}

func TestWebhookCaptureChallengeLeavesOrderUntouched(t *testing.T) {
	gateway := &fakeGateway{status: "capture", fraudStatus: "challenge"}
	paymentRepo, _, orderService, service := setupPaymentTest(gateway)
	ctx := context.Background()

	tx := pendingTransaction(paymentRepo)

	err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{OrderID: tx.OrderID.String()})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPending, tx.Status)
	assert.Empty(t, orderService.transitions)
}

func TestWebhookFailureStatuses(t *testing.T) {
	cases := []struct {
		gateway string
		stored  string
	}{
		{"deny", domain.PaymentStatusDeny},
		{"cancel", domain.PaymentStatusCancel},
		{"expire", domain.PaymentStatusExpire},
	}

	for _, tc := range cases {
		t.Run(tc.gateway, func(t *testing.T) {
			gateway := &fakeGateway{status: tc.gateway}
			paymentRepo, _, orderService, service := setupPaymentTest(gateway)
			ctx := context.Background()

			tx := pendingTransaction(paymentRepo)

			err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{OrderID: tx.OrderID.String()})
			require.NoError(t, err)

			assert.Equal(t, tc.stored, tx.Status)
			// A failed payment never moves the order.
			assert.Empty(t, orderService.transitions)
		})
	}
}

func TestWebhookUnknownStatusIgnored(t *testing.T) {
	gateway := &fakeGateway{status: "refund"}
	paymentRepo, _, orderService, service := setupPaymentTest(gateway)
	ctx := context.Background()

	tx := pendingTransaction(paymentRepo)

	err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{OrderID: tx.OrderID.String()})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, tx.Status)
	assert.Empty(t, orderService.transitions)
}

func TestWebhookErrors(t *testing.T) {
	gateway := &fakeGateway{checkErr: domain.ErrPaymentGateway}
	_, _, _, service := setupPaymentTest(gateway)
	ctx := context.Background()

	err := service.HandleWebhook(ctx, domain.MidtransWebhookRequest{OrderID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrPaymentGateway)

	// A verified notification for an order never seen here.
	gateway = &fakeGateway{status: "settlement"}
	_, _, _, service = setupPaymentTest(gateway)
	err = service.HandleWebhook(ctx, domain.MidtransWebhookRequest{OrderID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
