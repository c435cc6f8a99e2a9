package handlers

import (
	"belanja/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/add_item", h.HandleAddItem)
	cartRoutes.Post("/remove_item", h.HandleRemoveItem)
	cartRoutes.Post("/update_quantity", h.HandleUpdateQuantity)
	cartRoutes.Post("/clear", h.HandleClear)
	cartRoutes.Get("/total", h.HandleTotal)
}

// HandleGetCart retrieves the user's cart with its items.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.Get(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, "Could not retrieve cart", err)
	}
	return c.JSON(cart)
}

type addItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"omitempty,min=1"`
	ColorID   *string `json:"color_id"`
}

// HandleAddItem adds a product to the cart. Quantity defaults to 1.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID is required",
			"error":   err.Error(),
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.service.AddItem(c.Context(), currentUserID(c), req.ProductID, req.Quantity, req.ColorID)
	if err != nil {
		return serviceError(c, "Could not add item to cart", err)
	}
	return c.JSON(item)
}

type removeItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// HandleRemoveItem removes a line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	var req removeItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Item ID is required",
			"error":   err.Error(),
		})
	}

	if err := h.service.RemoveItem(c.Context(), currentUserID(c), req.ItemID); err != nil {
		return serviceError(c, "Could not remove item from cart", err)
	}
	return c.JSON(fiber.Map{"message": "Item removed successfully"})
}

type updateQuantityRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// HandleUpdateQuantity sets the quantity of a cart line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Item ID and a quantity of at least 1 are required",
			"error":   err.Error(),
		})
	}

	item, err := h.service.UpdateQuantity(c.Context(), currentUserID(c), req.ItemID, req.Quantity)
	if err != nil {
		return serviceError(c, "Could not update item quantity", err)
	}
	return c.JSON(item)
}

// HandleClear removes all items from the cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context(), currentUserID(c)); err != nil {
		return serviceError(c, "Could not clear cart", err)
	}
	return c.JSON(fiber.Map{"message": "Cart cleared successfully"})
}

// HandleTotal returns the derived cart total and item count.
func (h *CartHandler) HandleTotal(c *fiber.Ctx) error {
	total, count, err := h.service.Totals(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, "Could not calculate cart total", err)
	}
	return c.JSON(fiber.Map{
		"total":       total,
		"items_count": count,
	})
}
