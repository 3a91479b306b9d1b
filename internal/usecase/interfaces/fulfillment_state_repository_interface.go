package interfaces

import (
	"context"
	"esim_bridge/internal/domain/entities"
	"time"
)

// IFulfillmentStateRepository is the typed view over the orchestrator state
// persisted as order metafields.
//
// The service must be able to:
//   - read/set the processed flag (idempotent replay)
//   - read/write the processing-lock fields (TTL mutual exclusion)
//   - append created eSIMs and per-variant fulfilled-unit counts
//   - append usage-alert dedup keys
//   - enumerate orders that own at least one recorded eSIM

type IFulfillmentStateRepository interface {
	GetProcessed(ctx context.Context, orderID string) (bool, error)
	MarkProcessed(ctx context.Context, orderID string, at time.Time) error

	ReadLock(ctx context.Context, orderID string) (entities.LockState, error)
	WriteLock(ctx context.Context, orderID string, lock entities.LockState) error

	RecordedAssets(ctx context.Context, orderID string) ([]entities.RecordedAsset, error)
	AppendRecordedAsset(ctx context.Context, orderID string, asset entities.RecordedAsset) error

	FulfilledUnits(ctx context.Context, orderID string) (map[string]int, error)
	SetFulfilledUnits(ctx context.Context, orderID string, units map[string]int) error

	AlertKeys(ctx context.Context, orderID string) ([]string, error)
	AppendAlertKey(ctx context.Context, orderID string, key string) error

	SearchOrdersWithAssets(ctx context.Context, since time.Time) ([]entities.OrderRef, error)
}
