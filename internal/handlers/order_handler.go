package handlers

import (
	"belanja/internal/middleware"
	"belanja/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/create_from_cart", h.HandleCreateFromCart)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Get("/:id/items", h.HandleGetOrderItems)
	orderRoutes.Post("/:id/cancel", h.HandleCancelOrder)
	orderRoutes.Post("/:id/pay", h.HandlePayOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders retrieves the authenticated user's orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.List(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

type createFromCartRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

// HandleCreateFromCart materializes the user's cart into an order.
func (h *OrderHandler) HandleCreateFromCart(c *fiber.Ctx) error {
	var req createFromCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.CreateFromCart(c.Context(), currentUserID(c), req.ShippingAddress)
	if err != nil {
		middleware.RecordSettlementOperation("create_from_cart", false)
		return serviceError(c, "Could not create order", err)
	}
	middleware.RecordSettlementOperation("create_from_cart", true)
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.Get(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return serviceError(c, "Could not retrieve order", err)
	}
	return c.JSON(order)
}

// HandleGetOrderItems retrieves the item snapshots of an order.
func (h *OrderHandler) HandleGetOrderItems(c *fiber.Ctx) error {
	items, err := h.service.Items(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		return serviceError(c, "Could not retrieve order items", err)
	}
	return c.JSON(items)
}

// HandleCancelOrder cancels an order, refunding the wallet when the order
// was already paid.
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	order, err := h.service.Cancel(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		middleware.RecordSettlementOperation("cancel_order", false)
		return serviceError(c, "Could not cancel order", err)
	}
	middleware.RecordSettlementOperation("cancel_order", true)
	return c.JSON(order)
}

// HandlePayOrder pays for an order from the user's wallet.
func (h *OrderHandler) HandlePayOrder(c *fiber.Ctx) error {
	order, err := h.service.Pay(c.Context(), currentUserID(c), c.Params("id"))
	if err != nil {
		middleware.RecordSettlementOperation("pay_order", false)
		return serviceError(c, "Could not pay for order", err)
	}
	middleware.RecordSettlementOperation("pay_order", true)
	return c.JSON(order)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// HandleUpdateOrderStatus advances the fulfilment status of an order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid status is required for order status update",
			"error":   err.Error(),
		})
	}

	order, err := h.service.UpdateStatus(c.Context(), currentUserID(c), c.Params("id"), req.Status)
	if err != nil {
		return serviceError(c, "Could not update order status", err)
	}
	return c.JSON(order)
}
