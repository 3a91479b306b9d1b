package interfaces

import (
	"context"
	"esim_bridge/internal/domain/entities"
)

// ICatalogRepository reads catalog and customer metafields from the commerce
// platform.
//
// Variant metafields map a purchased variant to a provisioning plan and an
// action kind; customer metafields cache the commerce-customer to
// provider-customer mapping so repeat buyers do not get duplicate provider
// customers.
type ICatalogRepository interface {
	GetVariantConfig(ctx context.Context, variantID string) (entities.VariantConfig, error)
	GetCustomerMapping(ctx context.Context, commerceCustomerID string) (string, error)
	SaveCustomerMapping(ctx context.Context, commerceCustomerID, provisioningCustomerID string) error
}
