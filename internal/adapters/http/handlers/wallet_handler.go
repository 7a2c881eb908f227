package handlers

import (
	"scholarchain/internal/adapters/ledger"
	"scholarchain/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// WalletHandler handles ledger account endpoints
type WalletHandler struct {
	ledger ledger.Ledger
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(ldg ledger.Ledger) *WalletHandler {
	return &WalletHandler{
		ledger: ldg,
	}
}

// Balance returns the ledger balance for the calling wallet
// @Summary Get wallet balance
// @Description Get the ledger balance for the calling wallet address
// @Tags Wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /wallet/balance [get]
func (h *WalletHandler) Balance(c *fiber.Ctx) error {
	address, _ := c.Locals("walletAddress").(string)

	balance, err := h.ledger.AccountBalance(c.Context(), address)
	if err != nil {
		return response.BadGateway(c, "Failed to fetch balance from ledger")
	}

	return response.Success(c, "Balance retrieved successfully", fiber.Map{
		"address": address,
		"balance": balance,
	})
}
