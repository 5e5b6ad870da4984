package handlers

import (
	"errors"

	"pulsepay/internal/services/fraud"
	"pulsepay/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// FraudHandler exposes read-only views over the risk engine.
type FraudHandler struct {
	engine *fraud.Engine
}

// NewFraudHandler creates a new FraudHandler.
func NewFraudHandler(engine *fraud.Engine) *FraudHandler {
	return &FraudHandler{engine: engine}
}

// GetBlockedTransactions handles GET /api/fraud/blocked requests.
// Records come back most recent first.
func (h *FraudHandler) GetBlockedTransactions(c *fiber.Ctx) error {
	return response.Success(c, "blocked transactions fetched", h.engine.Blocked())
}

// GetAccountProfile handles GET /api/fraud/profile/:accountId requests.
func (h *FraudHandler) GetAccountProfile(c *fiber.Ctx) error {
	accountID := c.Params("accountId")
	if accountID == "" {
		return response.BadRequest(c, "account id is required")
	}

	summary, err := h.engine.ProfileSummary(accountID)
	if err != nil {
		if errors.Is(err, fraud.ErrProfileNotFound) {
			return response.NotFound(c, "no profile for account")
		}
		return response.ServerError(c, "failed to fetch profile")
	}
	return response.Success(c, "profile fetched", summary)
}
