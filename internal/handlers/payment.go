package handlers

import (
	"errors"
	"strconv"

	"pulsepay/internal/models"
	"pulsepay/internal/services/fraud"
	"pulsepay/internal/services/payment"
	"pulsepay/internal/utils/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler exposes risk-gated payment endpoints.
type PaymentHandler struct {
	service  payment.Service
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(s payment.Service) *PaymentHandler {
	return &PaymentHandler{
		service:  s,
		validate: validator.New(),
	}
}

// ProcessPayment handles POST /api/transactions requests. The payment
// is scored before any balance moves; blocked payments return 403 with
// the full score breakdown.
func (h *PaymentHandler) ProcessPayment(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	var req struct {
		CounterpartyID string  `json:"counterparty_id" validate:"required"`
		Amount         float64 `json:"amount" validate:"required,gt=0"`
		Type           string  `json:"type" validate:"omitempty,oneof=PAYMENT TRANSFER WITHDRAWAL DEPOSIT"`
		Description    string  `json:"description"`
		IPAddress      string  `json:"ip_address"`
		DeviceHash     string  `json:"device_hash"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	if err := h.validate.Struct(req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	ip := req.IPAddress
	if ip == "" {
		ip = c.IP()
	}

	result, err := h.service.ProcessPayment(c.Context(), payment.Request{
		AccountID:      claims.AccountID,
		CounterpartyID: req.CounterpartyID,
		Amount:         req.Amount,
		Type:           req.Type,
		Description:    req.Description,
		IPAddress:      ip,
		DeviceHash:     req.DeviceHash,
	})
	if err != nil {
		if errors.Is(err, fraud.ErrInvalidAmount) ||
			errors.Is(err, fraud.ErrInvalidAddress) ||
			errors.Is(err, fraud.ErrMissingAccount) {
			return response.BadRequest(c, err.Error())
		}
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if result.Decision == fraud.DecisionBlock {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"message": "transaction blocked",
			"data":    result,
		})
	}
	return response.Success(c, "transaction completed", result)
}

// GetTransactions handles GET /api/transactions requests.
func (h *PaymentHandler) GetTransactions(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	txs, err := h.service.GetAccountTransactions(c.Context(), claims.AccountID, limit, offset)
	if err != nil {
		return response.ServerError(c, "failed to fetch transactions")
	}
	return response.Success(c, "transactions fetched", txs)
}
