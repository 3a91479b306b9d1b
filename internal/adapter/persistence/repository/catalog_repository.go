package repository

import (
	"context"
	"strings"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"
)

// Variant and customer metafield keys.
const (
	fieldVariantPlanID = "plan_id"
	fieldVariantAction = "action"
	fieldCustomerID    = "esim_customer_id"
)

// CatalogRepository reads the per-variant plan mapping and the
// commerce-customer to provider-customer mapping, both stored as metafields.

type CatalogRepository struct {
	store interfaces.IOrderRecordStore
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(store interfaces.IOrderRecordStore) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) GetVariantConfig(ctx context.Context, variantID string) (entities.VariantConfig, error) {
	fields, err := r.store.ReadFields(ctx, variantID, []string{fieldVariantPlanID, fieldVariantAction})
	if err != nil {
		return entities.VariantConfig{}, err
	}

	cfg := entities.VariantConfig{
		PlanID: strings.TrimSpace(fields[fieldVariantPlanID]),
	}
	switch entities.LineItemAction(strings.ToLower(strings.TrimSpace(fields[fieldVariantAction]))) {
	case entities.ActionProvision:
		cfg.Action = entities.ActionProvision
	case entities.ActionTopUp:
		cfg.Action = entities.ActionTopUp
	}
	return cfg, nil
}

func (r *CatalogRepository) GetCustomerMapping(ctx context.Context, commerceCustomerID string) (string, error) {
	fields, err := r.store.ReadFields(ctx, commerceCustomerID, []string{fieldCustomerID})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(fields[fieldCustomerID]), nil
}

func (r *CatalogRepository) SaveCustomerMapping(ctx context.Context, commerceCustomerID, provisioningCustomerID string) error {
	userErrors, err := r.store.WriteFields(ctx, commerceCustomerID, []interfaces.MetafieldInput{
		{Key: fieldCustomerID, Type: typeText, Value: provisioningCustomerID},
	})
	if err != nil {
		return err
	}
	if len(userErrors) > 0 {
		return userErrorsToErr(commerceCustomerID, userErrors)
	}
	return nil
}
