package request

import (
	"strconv"
	"strings"

	"esim_bridge/internal/domain/entities"
)

// OrderWebhookRequest is the commerce platform's "order paid" webhook payload,
// reduced to the fields fulfillment needs. Numeric ids arrive as int64; the
// GraphQL gid is preferred as the order identity when present.

type OrderWebhookRequest struct {
	ID              int64             `json:"id"`
	AdminGraphQLID  string            `json:"admin_graphql_api_id"`
	Email           string            `json:"email"`
	ContactEmail    string            `json:"contact_email"`
	Customer        *WebhookCustomer  `json:"customer"`
	BillingAddress  *WebhookAddress   `json:"billing_address"`
	ShippingAddress *WebhookAddress   `json:"shipping_address"`
	LineItems       []WebhookLineItem `json:"line_items"`
}

type WebhookCustomer struct {
	ID             int64  `json:"id"`
	AdminGraphQLID string `json:"admin_graphql_api_id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
}

type WebhookAddress struct {
	CountryCode string `json:"country_code"`
}

type WebhookLineItem struct {
	VariantID int64  `json:"variant_id"`
	Quantity  int    `json:"quantity"`
	Title     string `json:"title"`
}

// ToOrder maps the webhook payload onto the domain order. Country resolution
// is billing address, then shipping address, then the configured fallback.
func (r OrderWebhookRequest) ToOrder(shopDomain, fallbackCountry string) entities.Order {
	order := entities.Order{
		ID:          r.orderID(),
		ShopDomain:  shopDomain,
		Email:       r.email(),
		CountryCode: r.countryCode(fallbackCountry),
	}

	if r.Customer != nil {
		order.CustomerID = strings.TrimSpace(r.Customer.AdminGraphQLID)
		if order.CustomerID == "" && r.Customer.ID != 0 {
			order.CustomerID = strconv.FormatInt(r.Customer.ID, 10)
		}
		order.FirstName = strings.TrimSpace(r.Customer.FirstName)
		order.LastName = strings.TrimSpace(r.Customer.LastName)
	}

	for _, item := range r.LineItems {
		// Items without a variant cannot be mapped to a plan; non-positive
		// quantities owe nothing and must not count as fulfillable work.
		if item.VariantID == 0 || item.Quantity < 1 {
			continue
		}
		order.LineItems = append(order.LineItems, entities.LineItem{
			VariantID: strconv.FormatInt(item.VariantID, 10),
			Title:     strings.TrimSpace(item.Title),
			Quantity:  item.Quantity,
		})
	}
	return order
}

func (r OrderWebhookRequest) orderID() string {
	if gid := strings.TrimSpace(r.AdminGraphQLID); gid != "" {
		return gid
	}
	if r.ID != 0 {
		return strconv.FormatInt(r.ID, 10)
	}
	return ""
}

func (r OrderWebhookRequest) email() string {
	if v := strings.TrimSpace(r.Email); v != "" {
		return v
	}
	if v := strings.TrimSpace(r.ContactEmail); v != "" {
		return v
	}
	if r.Customer != nil {
		return strings.TrimSpace(r.Customer.Email)
	}
	return ""
}

func (r OrderWebhookRequest) countryCode(fallback string) string {
	if r.BillingAddress != nil {
		if v := strings.TrimSpace(r.BillingAddress.CountryCode); v != "" {
			return v
		}
	}
	if r.ShippingAddress != nil {
		if v := strings.TrimSpace(r.ShippingAddress.CountryCode); v != "" {
			return v
		}
	}
	return fallback
}
