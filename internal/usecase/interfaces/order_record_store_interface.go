package interfaces

import (
	"context"
	"esim_bridge/internal/domain/entities"
)

// MetafieldInput is one namespaced field written to an owner record in the
// commerce platform.
type MetafieldInput struct {
	Key   string
	Type  string
	Value string
}

// UserError is a field-level rejection returned by the commerce platform on
// metafield writes.
type UserError struct {
	Field   string
	Message string
}

// IOrderRecordStore abstracts the commerce platform's metafield storage.
//
// This is the only persistent store available to the service: the processed
// flag, lock fields, recorded eSIMs and usage-alert dedup keys all live here,
// namespaced under a stable set of keys per owner (order, customer, variant).
type IOrderRecordStore interface {
	ReadFields(ctx context.Context, ownerID string, keys []string) (map[string]string, error)
	WriteFields(ctx context.Context, ownerID string, fields []MetafieldInput) ([]UserError, error)
	SearchOrders(ctx context.Context, query string) ([]entities.OrderRef, error)
}
