package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrClaimNotBillable               = errors.New("claim not ready for contractor billing")
	ErrNothingToBill                  = errors.New("claim has no contractor billing amount")
	ErrAlreadyBilled                  = errors.New("contractor billing already collected for claim")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// billableStatuses are the claim statuses at which the contractor billing can be collected.
var billableStatuses = map[entities.ClaimStatus]bool{
	entities.ClaimStatusFinalInvoiceReceived: true,
	entities.ClaimStatusMoneyReleased:        true,
	entities.ClaimStatusCompleted:            true,
}

// PaymentOptions tunes how the payment gateway is driven.
//
// In mock mode the external gateway is skipped and an approved provider response is synthesized.
// The sandbox payer fields let TEST- access tokens run against Mercado Pago test users.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IBillingPaymentUseCase collects a claim's contractor billing.
//
// The amount charged is always the contractor total stored on the claim; whatever amount the
// caller sends in the provider payload is overwritten.

type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, claimID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByClaimID(ctx context.Context, claimID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo      interfaces.IBillingPaymentRepository
	claimRepo interfaces.IClaimRepository
	gateway   interfaces.IPaymentGateway
	opts      PaymentOptions
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, claimRepo interfaces.IClaimRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, claimRepo: claimRepo, gateway: gateway, opts: opts}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, claimID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log := zap.L().With(zap.String("claim_id", claimID))
	log.Info("[payment][usecase] create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return entities.BillingPayment{}, ErrInvalidClaimID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			log.Info("[payment][usecase] invalid payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.MockMode {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	claim, err := u.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		log.Error("[payment][usecase] failed loading claim", zap.Error(err))
		return entities.BillingPayment{}, err
	}
	if claim.ID == "" {
		return entities.BillingPayment{}, ErrClaimNotFound
	}
	if !billableStatuses[claim.Status] {
		log.Info("[payment][usecase] claim not billable", zap.String("status", string(claim.Status)))
		return entities.BillingPayment{}, ErrClaimNotBillable
	}
	amount := claim.Commission.Contractor.Total
	if amount <= 0 {
		return entities.BillingPayment{}, ErrNothingToBill
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("[payment][usecase] missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("[payment][usecase] missing/invalid payer")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = claim.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Contractor billing for claim %s", claim.ClaimNumber)
	}
	reqMap["transaction_amount"] = amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	previous, err := u.repo.ListByClaimID(ctx, claim.ID)
	if err != nil {
		log.Error("[payment][usecase] failed loading previous payments", zap.Error(err))
		return entities.BillingPayment{}, err
	}
	for _, p := range previous {
		if p.Status == entities.PaymentStatusApproved {
			log.Info("[payment][usecase] claim already billed", zap.String("payment_id", p.ID))
			return entities.BillingPayment{}, ErrAlreadyBilled
		}
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if u.opts.MockMode {
		log.Info("[payment][usecase] mock mode enabled; skipping external payment gateway")
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
		if err != nil {
			return entities.BillingPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
			return entities.BillingPayment{}, classifyGatewayError(err)
		}
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		ClaimID:      claim.ID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       paymentStatus(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}
	log.Info("[payment][usecase] create-and-approve success",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Float64("amount", created.Amount),
	)
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByClaimID(ctx context.Context, claimID string) ([]entities.BillingPayment, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return nil, ErrInvalidClaimID
	}
	return u.repo.ListByClaimID(ctx, claimID)
}

func mockProviderResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

// paymentStatus maps a Mercado Pago status onto ours. in_process and friends stay pending.
func paymentStatus(provider string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BillingPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Either payer.id or payer.email identifies the payer; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

// normalizeSandboxPayer swaps a configured sandbox user id for its email, which is what the
// sandbox accepts.
func (u *BillingPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	zap.L().Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}
