package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for collecting a claim's contractor billing.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago schemas; the body may
// also be the provider payload itself, without the envelope.

type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
