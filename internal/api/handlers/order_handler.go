package handlers

import (
	"Savoria-Backend/domain"
	"Savoria-Backend/internal/api/presenters"
	"Savoria-Backend/pkg/order"
	"Savoria-Backend/pkg/payment"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		Checkout(c *fiber.Ctx) error
		GetOrder(c *fiber.Ctx) error
		GetUserOrders(c *fiber.Ctx) error
		CancelOrder(c *fiber.Ctx) error
		UpdateStatus(c *fiber.Ctx) error
		UploadReceipt(c *fiber.Ctx) error
		GetStatistics(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService   order.OrderService
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, paymentService payment.PaymentService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService:   orderService,
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *orderHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CheckoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	res, err := h.orderService.Checkout(c.Context(), userID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrCartEmpty) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCheckout, err)
	}

	if req.PaymentMethod == domain.PaymentMethodMidtrans {
		tx, err := h.paymentService.CreateTransaction(c.Context(), res.ID, userID)
		if err != nil {
			log.Printf("error creating payment transaction for order %s: %v", res.OrderNumber, err)
		} else {
			res.PaymentRedirect = tx.RedirectURL
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCheckout)
}

func (h *orderHandler) GetOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	res, err := h.orderService.GetOrder(c.Context(), orderID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

func (h *orderHandler) GetUserOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetUserOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) CancelOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	res, err := h.orderService.CancelOrder(c.Context(), orderID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCancelOrder, err)
		}
		if errors.Is(err, domain.ErrOrderNotCancellable) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCancelOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCancelOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCancelOrder)
}

func (h *orderHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStatus, err)
	}

	res, err := h.orderService.UpdateStatus(c.Context(), orderID, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateStatus, err)
		}
		if errors.Is(err, domain.ErrInvalidOrderStatus) ||
			errors.Is(err, domain.ErrBackwardTransition) ||
			errors.Is(err, domain.ErrOrderNotCancellable) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateStatus, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateStatus)
}

func (h *orderHandler) UploadReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	file, err := c.FormFile("receipt")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	url, err := h.orderService.UploadReceipt(c.Context(), orderID, userID, domain.UploadReceiptRequest{Receipt: file})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadReceipt, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"receipt_url": url}, fiber.StatusOK, domain.MessageSuccessUploadReceipt)
}

func (h *orderHandler) GetStatistics(c *fiber.Ctx) error {
	res, err := h.orderService.GetStatistics(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOrderStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrderStats)
}
