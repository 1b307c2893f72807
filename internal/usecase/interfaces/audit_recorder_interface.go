package interfaces

import (
	"context"
	"supplement_tracker/internal/domain/entities"
)

// IAuditRecorder stores the before/after values of every accepted mutation.
type IAuditRecorder interface {
	Record(ctx context.Context, e entities.AuditEntry) error
}
