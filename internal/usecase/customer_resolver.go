package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"esim_bridge/internal/usecase/interfaces"

	"esim_bridge/internal/domain/entities"
)

var (
	ErrInvalidCustomerEmail     = errors.New("invalid customer email")
	ErrCatalogRepoNotConfigured = errors.New("catalog repository not configured")
	ErrProviderNotConfigured    = errors.New("provisioning provider not configured")
	ErrCustomerCreationFailed   = errors.New("provisioning customer creation failed")
)

// ResolveCustomerInput carries the buyer identity from the order payload.
type ResolveCustomerInput struct {
	CommerceCustomerID string // empty for guest checkouts
	Email              string
	FirstName          string
	LastName           string
	CountryCode        string
	TraceTag           string
}

// CustomerResolver maps a commerce-side buyer to a provider-side customer id,
// creating one when no mapping exists.
//
// Guest checkouts carry no commerce customer id, so nothing can be cached for
// them; each guest order creates one fresh provider customer.
type CustomerResolver struct {
	catalog  interfaces.ICatalogRepository
	provider interfaces.IProvisioningProvider
}

func NewCustomerResolver(catalog interfaces.ICatalogRepository, provider interfaces.IProvisioningProvider) *CustomerResolver {
	return &CustomerResolver{catalog: catalog, provider: provider}
}

func (r *CustomerResolver) Resolve(ctx context.Context, in ResolveCustomerInput) (string, error) {
	if r.catalog == nil {
		return "", ErrCatalogRepoNotConfigured
	}
	if r.provider == nil {
		return "", ErrProviderNotConfigured
	}
	if strings.TrimSpace(in.Email) == "" {
		return "", ErrInvalidCustomerEmail
	}

	commerceID := strings.TrimSpace(in.CommerceCustomerID)
	if commerceID != "" {
		mapped, err := r.catalog.GetCustomerMapping(ctx, commerceID)
		if err != nil {
			log.Printf("[customer][resolver] mapping lookup failed commerce_customer_id=%s err=%v", commerceID, err)
			return "", err
		}
		if strings.TrimSpace(mapped) != "" {
			log.Printf("[customer][resolver] mapping hit commerce_customer_id=%s provisioning_customer_id=%s", commerceID, mapped)
			return mapped, nil
		}
	}

	profile := entities.CustomerProfile{
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		CountryCode: in.CountryCode,
	}
	log.Printf("[customer][resolver] creating provisioning customer email=%s trace_tag=%s", in.Email, in.TraceTag)
	provisioningID, err := r.provider.CreateCustomer(ctx, profile, in.TraceTag)
	if err != nil {
		log.Printf("[customer][resolver] create failed email=%s err=%v", in.Email, err)
		return "", errors.Join(ErrCustomerCreationFailed, err)
	}
	if strings.TrimSpace(provisioningID) == "" {
		return "", ErrCustomerCreationFailed
	}

	if commerceID != "" {
		if err := r.catalog.SaveCustomerMapping(ctx, commerceID, provisioningID); err != nil {
			// The provider customer exists and the order can proceed; only
			// future orders lose the cache hit.
			log.Printf("[customer][resolver] mapping persist failed commerce_customer_id=%s provisioning_customer_id=%s err=%v", commerceID, provisioningID, err)
		} else {
			log.Printf("[customer][resolver] mapping persisted commerce_customer_id=%s provisioning_customer_id=%s", commerceID, provisioningID)
		}
	}
	return provisioningID, nil
}
