package entities

import "time"

type NotificationKind string

const (
	NotificationClaimStatusChanged   NotificationKind = "claim_status_changed"
	NotificationSupplementDecided    NotificationKind = "supplement_decided"
	NotificationContractorBillingDue NotificationKind = "contractor_billing_due"
)

// Notification is handed to the dispatcher after an accepted change. Delivery is best effort.
type Notification struct {
	Kind         NotificationKind  `json:"kind"`
	ClaimID      string            `json:"claim_id"`
	SupplementID string            `json:"supplement_id,omitempty"`
	Subject      string            `json:"subject"`
	Fields       map[string]string `json:"fields,omitempty"`
	OccurredAt   time.Time         `json:"occurred_at"`
}
