package notifications

import (
	"context"

	"supplement_tracker/internal/domain/entities"

	"go.uber.org/zap"
)

// LogSink writes notifications to the structured log. It stands in for e-mail delivery.
type LogSink struct{}

func (LogSink) Deliver(_ context.Context, n entities.Notification) error {
	fields := []zap.Field{
		zap.String("kind", string(n.Kind)),
		zap.String("claim_id", n.ClaimID),
		zap.String("subject", n.Subject),
		zap.Time("occurred_at", n.OccurredAt),
	}
	if n.SupplementID != "" {
		fields = append(fields, zap.String("supplement_id", n.SupplementID))
	}
	for k, v := range n.Fields {
		fields = append(fields, zap.String("field."+k, v))
	}
	zap.L().Info("[notification] delivered", fields...)
	return nil
}
