package handlers

import (
	"belanja/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// WalletHandler handles HTTP requests for the authenticated user's wallet.
type WalletHandler struct {
	service *services.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(service *services.WalletService) *WalletHandler {
	return &WalletHandler{
		service: service,
	}
}

// RegisterRoutes registers the wallet routes with the Fiber app.
func (h *WalletHandler) RegisterRoutes(router fiber.Router) {
	walletRoutes := router.Group("/wallet")
	walletRoutes.Get("/", h.HandleGetWallet)
	walletRoutes.Get("/balance", h.HandleGetBalance)
	walletRoutes.Post("/deposit", h.HandleDeposit)
	walletRoutes.Post("/withdraw", h.HandleWithdraw)
	walletRoutes.Get("/transactions", h.HandleGetTransactions)
}

// HandleGetWallet retrieves the user's wallet, creating it on first access.
func (h *WalletHandler) HandleGetWallet(c *fiber.Ctx) error {
	wallet, err := h.service.GetOrCreate(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, "Could not retrieve wallet", err)
	}
	return c.JSON(wallet)
}

// HandleGetBalance returns the wallet's current balance.
func (h *WalletHandler) HandleGetBalance(c *fiber.Ctx) error {
	wallet, err := h.service.GetOrCreate(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, "Could not retrieve wallet", err)
	}
	return c.JSON(fiber.Map{
		"balance":  wallet.Balance,
		"currency": "USD",
	})
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// HandleDeposit adds funds to the wallet.
func (h *WalletHandler) HandleDeposit(c *fiber.Ctx) error {
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	transaction, err := h.service.Deposit(c.Context(), currentUserID(c), req.Amount)
	if err != nil {
		return serviceError(c, "Could not deposit funds", err)
	}
	return c.JSON(transaction)
}

// HandleWithdraw removes funds from the wallet.
func (h *WalletHandler) HandleWithdraw(c *fiber.Ctx) error {
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	transaction, err := h.service.Withdraw(c.Context(), currentUserID(c), req.Amount)
	if err != nil {
		return serviceError(c, "Could not withdraw funds", err)
	}
	return c.JSON(transaction)
}

// HandleGetTransactions returns the wallet's transaction history.
func (h *WalletHandler) HandleGetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.Transactions(c.Context(), currentUserID(c))
	if err != nil {
		return serviceError(c, "Could not retrieve transactions", err)
	}
	return c.JSON(transactions)
}
