package interfaces

import (
	"context"
	"esim_bridge/internal/domain/entities"
)

// INotifier abstracts the transactional email channel used for buyer delivery
// emails, usage alerts and operator escalations.
type INotifier interface {
	Send(ctx context.Context, n entities.Notification) (providerMessageID string, err error)
}
