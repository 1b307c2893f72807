package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	appconfig "supplement_tracker/internal/infrastructure/config"
	"supplement_tracker/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway collects contractor billing through the Mercado Pago payments API.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if cfg.AccessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		return nil, eris.Wrap(err, "mercadopago: sdk config")
	}
	zap.L().Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	zap.L().Debug("[payment][gateway] create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, eris.Wrap(err, "mercadopago: decode payment request")
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		zap.L().Warn("[payment][gateway] sdk create failed", zap.Error(err))
		return "", "", nil, eris.Wrap(err, "mercadopago: create payment")
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, eris.Wrap(err, "mercadopago: encode payment response")
	}

	id := fmt.Sprintf("%d", resp.ID)
	zap.L().Info("[payment][gateway] create success",
		zap.String("provider_payment_id", id),
		zap.String("provider_status", resp.Status),
	)
	return id, resp.Status, b, nil
}
