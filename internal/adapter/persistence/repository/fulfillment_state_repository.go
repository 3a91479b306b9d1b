package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"
)

// Metafield namespace and keys holding all orchestrator state. The commerce
// platform's order record is the only persistent store available, so the
// processed flag, lock fields, recorded eSIMs, retry bookkeeping and
// usage-alert dedup keys all live under these keys.
const (
	defaultNamespace = "esim_bridge"

	fieldProcessed      = "processed"
	fieldProcessedAt    = "processed_at"
	fieldLockHeld       = "lock_held"
	fieldLockToken      = "lock_token"
	fieldLockAcquiredAt = "lock_acquired_at"
	fieldEsims          = "esims"
	fieldFulfilledUnits = "fulfilled_units"
	fieldAlertKeys      = "usage_alerts_sent"
)

// Metafield value types understood by the commerce platform.
const (
	typeBoolean  = "boolean"
	typeDateTime = "date_time"
	typeText     = "single_line_text_field"
	typeJSON     = "json"
)

// FulfillmentStateRepository persists orchestrator state as order metafields.
//
// Append operations (recorded eSIMs, fulfilled units, alert keys) are
// read-modify-write; the caller is expected to hold the processing lock for
// the order while mutating them.

type FulfillmentStateRepository struct {
	store     interfaces.IOrderRecordStore
	namespace string
}

var _ interfaces.IFulfillmentStateRepository = (*FulfillmentStateRepository)(nil)

func NewFulfillmentStateRepository(store interfaces.IOrderRecordStore) *FulfillmentStateRepository {
	return &FulfillmentStateRepository{
		store:     store,
		namespace: getenvDefault("METAFIELD_NAMESPACE", defaultNamespace),
	}
}

func (r *FulfillmentStateRepository) GetProcessed(ctx context.Context, orderID string) (bool, error) {
	fields, err := r.store.ReadFields(ctx, orderID, []string{fieldProcessed})
	if err != nil {
		return false, err
	}
	return fields[fieldProcessed] == "true", nil
}

func (r *FulfillmentStateRepository) MarkProcessed(ctx context.Context, orderID string, at time.Time) error {
	return r.write(ctx, orderID,
		interfaces.MetafieldInput{Key: fieldProcessed, Type: typeBoolean, Value: "true"},
		interfaces.MetafieldInput{Key: fieldProcessedAt, Type: typeDateTime, Value: at.UTC().Format(time.RFC3339)},
	)
}

func (r *FulfillmentStateRepository) ReadLock(ctx context.Context, orderID string) (entities.LockState, error) {
	fields, err := r.store.ReadFields(ctx, orderID, []string{fieldLockHeld, fieldLockToken, fieldLockAcquiredAt})
	if err != nil {
		return entities.LockState{}, err
	}

	lock := entities.LockState{
		Held:  fields[fieldLockHeld] == "true",
		Token: fields[fieldLockToken],
	}
	if raw := fields[fieldLockAcquiredAt]; raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			// An unparsable timestamp behaves like a missing one: the lock
			// reads as maximally stale and is eligible for takeover.
			return lock, nil
		}
		lock.AcquiredAt = at
	}
	return lock, nil
}

func (r *FulfillmentStateRepository) WriteLock(ctx context.Context, orderID string, lock entities.LockState) error {
	held := "false"
	if lock.Held {
		held = "true"
	}
	acquiredAt := ""
	if !lock.AcquiredAt.IsZero() {
		acquiredAt = lock.AcquiredAt.UTC().Format(time.RFC3339)
	}
	return r.write(ctx, orderID,
		interfaces.MetafieldInput{Key: fieldLockHeld, Type: typeBoolean, Value: held},
		interfaces.MetafieldInput{Key: fieldLockToken, Type: typeText, Value: lock.Token},
		interfaces.MetafieldInput{Key: fieldLockAcquiredAt, Type: typeText, Value: acquiredAt},
	)
}

func (r *FulfillmentStateRepository) RecordedAssets(ctx context.Context, orderID string) ([]entities.RecordedAsset, error) {
	fields, err := r.store.ReadFields(ctx, orderID, []string{fieldEsims})
	if err != nil {
		return nil, err
	}
	raw := fields[fieldEsims]
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var assets []entities.RecordedAsset
	if err := json.Unmarshal([]byte(raw), &assets); err != nil {
		return nil, fmt.Errorf("corrupt %s metafield on %s: %w", fieldEsims, orderID, err)
	}
	return assets, nil
}

func (r *FulfillmentStateRepository) AppendRecordedAsset(ctx context.Context, orderID string, asset entities.RecordedAsset) error {
	assets, err := r.RecordedAssets(ctx, orderID)
	if err != nil {
		return err
	}
	assets = append(assets, asset)

	encoded, err := json.Marshal(assets)
	if err != nil {
		return err
	}
	return r.write(ctx, orderID, interfaces.MetafieldInput{Key: fieldEsims, Type: typeJSON, Value: string(encoded)})
}

func (r *FulfillmentStateRepository) FulfilledUnits(ctx context.Context, orderID string) (map[string]int, error) {
	fields, err := r.store.ReadFields(ctx, orderID, []string{fieldFulfilledUnits})
	if err != nil {
		return nil, err
	}
	raw := fields[fieldFulfilledUnits]
	if strings.TrimSpace(raw) == "" {
		return map[string]int{}, nil
	}

	units := map[string]int{}
	if err := json.Unmarshal([]byte(raw), &units); err != nil {
		return nil, fmt.Errorf("corrupt %s metafield on %s: %w", fieldFulfilledUnits, orderID, err)
	}
	return units, nil
}

func (r *FulfillmentStateRepository) SetFulfilledUnits(ctx context.Context, orderID string, units map[string]int) error {
	encoded, err := json.Marshal(units)
	if err != nil {
		return err
	}
	return r.write(ctx, orderID, interfaces.MetafieldInput{Key: fieldFulfilledUnits, Type: typeJSON, Value: string(encoded)})
}

func (r *FulfillmentStateRepository) AlertKeys(ctx context.Context, orderID string) ([]string, error) {
	fields, err := r.store.ReadFields(ctx, orderID, []string{fieldAlertKeys})
	if err != nil {
		return nil, err
	}
	raw := fields[fieldAlertKeys]
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, fmt.Errorf("corrupt %s metafield on %s: %w", fieldAlertKeys, orderID, err)
	}
	return keys, nil
}

func (r *FulfillmentStateRepository) AppendAlertKey(ctx context.Context, orderID, key string) error {
	keys, err := r.AlertKeys(ctx, orderID)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if k == key {
			return nil
		}
	}
	keys = append(keys, key)

	encoded, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	return r.write(ctx, orderID, interfaces.MetafieldInput{Key: fieldAlertKeys, Type: typeJSON, Value: string(encoded)})
}

func (r *FulfillmentStateRepository) SearchOrdersWithAssets(ctx context.Context, since time.Time) ([]entities.OrderRef, error) {
	query := fmt.Sprintf("metafields.%s.%s:* AND created_at:>=%s",
		r.namespace, fieldEsims, since.UTC().Format("2006-01-02"))
	return r.store.SearchOrders(ctx, query)
}

func (r *FulfillmentStateRepository) write(ctx context.Context, ownerID string, fields ...interfaces.MetafieldInput) error {
	userErrors, err := r.store.WriteFields(ctx, ownerID, fields)
	if err != nil {
		return err
	}
	if len(userErrors) > 0 {
		return userErrorsToErr(ownerID, userErrors)
	}
	return nil
}
