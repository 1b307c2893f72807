package entities

import "time"

const (
	AuditEntityClaim      = "claim"
	AuditEntitySupplement = "supplement"
	AuditEntityParty      = "party"
)

// AuditEntry records one accepted mutation with the values before and after it.
type AuditEntry struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	ClaimID    string         `json:"claim_id,omitempty"`
	Action     string         `json:"action"`
	Actor      string         `json:"actor,omitempty"`
	OldValues  map[string]any `json:"old_values,omitempty"`
	NewValues  map[string]any `json:"new_values,omitempty"`
	RecordedAt time.Time      `json:"recorded_at"`
}
