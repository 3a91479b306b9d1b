package interfaces

import (
	"context"
	"esim_bridge/internal/domain/entities"
)

// IProvisioningProvider abstracts the external eSIM provisioning API.
//
// The trace tag is an opaque correlation string (derived from the order id)
// passed on create calls so provider-side records can be tied back to the
// originating commerce order.
type IProvisioningProvider interface {
	CreateCustomer(ctx context.Context, profile entities.CustomerProfile, traceTag string) (string, error)
	CreateEsim(ctx context.Context, planID, customerID, traceTag string) (entities.CreatedEsim, error)
	GetCustomerEsims(ctx context.Context, customerID string) ([]entities.Esim, error)
	GetEsim(ctx context.Context, iccid string) (entities.Esim, error)
	GetEsimPlans(ctx context.Context, iccid string) ([]entities.Plan, error)
	CreateTopUp(ctx context.Context, iccid, planTypeID string) (entities.Plan, error)
}
