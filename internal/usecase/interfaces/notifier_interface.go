package interfaces

import (
	"context"
	"supplement_tracker/internal/domain/entities"
)

// INotifier hands a notification over for delivery. Callers log failures and move on.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
