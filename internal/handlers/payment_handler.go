package handlers

import (
	"belanja/internal/middleware"
	"belanja/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Get("/", h.HandleGetPayments)
	paymentRoutes.Post("/process_payment", h.HandleProcessPayment)
	paymentRoutes.Get("/:id/status", h.HandleGetPaymentStatus)
	paymentRoutes.Post("/:id/refund", h.HandleRefundPayment)
	paymentRoutes.Post("/:id/cancel", h.HandleCancelPayment)
}

// HandleGetPayments retrieves all payments on the user's orders.
func (h *PaymentHandler) HandleGetPayments(c *fiber.Ctx) error {
	payments, err := h.service.List(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, "Could not retrieve payments", err)
	}
	return c.JSON(payments)
}

type processPaymentRequest struct {
	OrderID       string `json:"order_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=wallet credit_card bank_transfer"`
}

// HandleProcessPayment attempts payment of an order. The payment method
// defaults to wallet; channels without a gateway integration answer 501.
func (h *PaymentHandler) HandleProcessPayment(c *fiber.Ctx) error {
	var req processPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order ID and a supported payment method are required",
			"error":   err.Error(),
		})
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "wallet"
	}

	payment, err := h.service.Process(c.Context(), currentUserID(c), req.OrderID, req.PaymentMethod)
	if err != nil {
		middleware.RecordSettlementOperation("process_payment", false)
		return serviceError(c, "Could not process payment", err)
	}
	middleware.RecordSettlementOperation("process_payment", true)
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// HandleGetPaymentStatus returns the current status of a payment.
func (h *PaymentHandler) HandleGetPaymentStatus(c *fiber.Ctx) error {
	payment, err := h.service.Get(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return serviceError(c, "Could not retrieve payment", err)
	}
	return c.JSON(fiber.Map{
		"status":         payment.Status,
		"payment_method": payment.PaymentMethod,
		"amount":         payment.Amount,
		"created_at":     payment.CreatedAt,
		"updated_at":     payment.UpdatedAt,
	})
}

// HandleRefundPayment refunds a completed payment.
func (h *PaymentHandler) HandleRefundPayment(c *fiber.Ctx) error {
	payment, err := h.service.Refund(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		middleware.RecordSettlementOperation("refund_payment", false)
		return serviceError(c, "Could not refund payment", err)
	}
	middleware.RecordSettlementOperation("refund_payment", true)
	return c.JSON(payment)
}

// HandleCancelPayment fails a pending payment.
func (h *PaymentHandler) HandleCancelPayment(c *fiber.Ctx) error {
	payment, err := h.service.Cancel(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		middleware.RecordSettlementOperation("cancel_payment", false)
		return serviceError(c, "Could not cancel payment", err)
	}
	middleware.RecordSettlementOperation("cancel_payment", true)
	return c.JSON(payment)
}
