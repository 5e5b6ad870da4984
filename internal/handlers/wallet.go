package handlers

import (
	"errors"

	"pulsepay/internal/models"
	"pulsepay/internal/services/wallet"
	"pulsepay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// WalletHandler exposes wallet endpoints.
type WalletHandler struct {
	service wallet.Service
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(s wallet.Service) *WalletHandler {
	return &WalletHandler{service: s}
}

// GetWallet handles GET /api/wallet requests.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	w, err := h.service.GetWallet(c.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, wallet.ErrWalletNotFound) {
			return response.NotFound(c, "wallet not found")
		}
		return response.ServerError(c, "failed to fetch wallet")
	}
	return response.Success(c, "wallet fetched", w)
}

// Deposit handles POST /api/wallet/deposit requests. A missing wallet
// is created on first deposit.
func (h *WalletHandler) Deposit(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	if req.Amount <= 0 {
		return response.BadRequest(c, "amount must be positive")
	}

	ctx := c.Context()
	if _, err := h.service.GetWallet(ctx, claims.AccountID); err != nil {
		if !errors.Is(err, wallet.ErrWalletNotFound) {
			return response.ServerError(c, "failed to fetch wallet")
		}
		if _, err := h.service.CreateWallet(ctx, claims.AccountID, req.Currency); err != nil {
			return response.ServerError(c, "failed to create wallet")
		}
	}

	if err := h.service.Credit(ctx, claims.AccountID, req.Amount); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}

	w, err := h.service.GetWallet(ctx, claims.AccountID)
	if err != nil {
		return response.ServerError(c, "failed to fetch wallet")
	}
	return response.Success(c, "deposit completed", w)
}
