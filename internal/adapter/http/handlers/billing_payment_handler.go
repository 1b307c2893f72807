package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "supplement_tracker/internal/adapter/http/dto/response"
	"supplement_tracker/internal/usecase"
	"supplement_tracker/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingPaymentHandler handles HTTP requests for contractor billing payments.

type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePaymentByClaimID godoc
// @Summary      Collect the contractor billing of a claim
// @Description  Charges the claim's stored contractor billing through Mercado Pago. The body is the provider payload, optionally wrapped in mp_payload.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        claim_id  path      string                                 true  "Claim ID"
// @Param        payload   body      request.BillingPaymentCreateRequest    false "Mercado Pago payload"
// @Success      200       {object}  response.BillingPaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /payments/{claim_id} [post]
func (h *BillingPaymentHandler) CreatePaymentByClaimID(c *gin.Context) {
	claimID := c.Param("claim_id")
	log := zap.L().With(zap.String("claim_id", claimID))
	log.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("[payment][handler] invalid payload", zap.Error(err))
			writeInvalidPayload(c)
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), claimID, mpPayload)
	if err != nil {
		writeError(c, "[payment][handler]", err)
		return
	}
	log.Info("[payment][handler] create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPaymentByClaimID godoc
// @Summary      Latest contractor billing payment of a claim
// @Tags         payments
// @Produce      json
// @Param        claim_id  path      string  true  "Claim ID"
// @Success      200       {object}  response.BillingPaymentResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /payments/{claim_id} [get]
func (h *BillingPaymentHandler) GetPaymentByClaimID(c *gin.Context) {
	claimID := c.Param("claim_id")

	payments, err := h.usecase.ListByClaimID(c.Request.Context(), claimID)
	if err != nil {
		writeError(c, "[payment][handler]", err)
		return
	}
	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrClaimNotBillable):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_BILLABLE", "Claim has not reached final invoice received", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToBill):
		return pkg.NewDomainErrorSimple("NOTHING_TO_BILL", "Claim has no contractor billing amount", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyBilled):
		return pkg.NewDomainErrorSimple("ALREADY_BILLED", "Contractor billing was already collected for this claim", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
