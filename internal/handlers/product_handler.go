package handlers

import (
	"belanja/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Get("/:id/comments", h.HandleGetComments)
	productRoutes.Post("/:id/comments", h.HandleAddComment)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.Context())
	if err != nil {
		return serviceError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product, including its effective
// (discounted) price.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, "Could not retrieve product", err)
	}
	return c.JSON(fiber.Map{
		"product":             product,
		"effective_price":     product.EffectivePrice(),
		"has_active_discount": product.HasActiveDiscount(),
	})
}

// HandleGetComments retrieves the reviews on a product.
func (h *ProductHandler) HandleGetComments(c *fiber.Ctx) error {
	comments, err := h.service.GetComments(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, "Could not retrieve comments", err)
	}
	return c.JSON(comments)
}

type addCommentRequest struct {
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

// HandleAddComment attaches a review to a product.
func (h *ProductHandler) HandleAddComment(c *fiber.Ctx) error {
	var req addCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Text and a rating between 1 and 5 are required",
			"error":   err.Error(),
		})
	}

	comment, err := h.service.AddComment(c.Context(), currentUserID(c), c.Params("id"), req.Text, req.Rating)
	if err != nil {
		return serviceError(c, "Could not add comment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
