package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"
)

var (
	ErrInvalidVariantID = errors.New("invalid variant id")
	ErrVariantNotMapped = errors.New("variant has no plan mapping")
)

// LineItemResolver maps a purchased variant to its provisioning plan and
// action kind via the catalog metafields. Pure lookup, no local logic; the
// orchestrator treats a failed resolution as a per-item failure that does not
// abort sibling items.
type LineItemResolver struct {
	catalog interfaces.ICatalogRepository
}

func NewLineItemResolver(catalog interfaces.ICatalogRepository) *LineItemResolver {
	return &LineItemResolver{catalog: catalog}
}

func (r *LineItemResolver) Resolve(ctx context.Context, variantID string) (entities.VariantConfig, error) {
	variantID = strings.TrimSpace(variantID)
	if variantID == "" {
		return entities.VariantConfig{}, ErrInvalidVariantID
	}
	if r.catalog == nil {
		return entities.VariantConfig{}, ErrCatalogRepoNotConfigured
	}

	cfg, err := r.catalog.GetVariantConfig(ctx, variantID)
	if err != nil {
		log.Printf("[lineitem][resolver] catalog lookup failed variant_id=%s err=%v", variantID, err)
		return entities.VariantConfig{}, err
	}
	if strings.TrimSpace(cfg.PlanID) == "" {
		log.Printf("[lineitem][resolver] no plan mapping variant_id=%s", variantID)
		return entities.VariantConfig{}, ErrVariantNotMapped
	}
	return cfg, nil
}
