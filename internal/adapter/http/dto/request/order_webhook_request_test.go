package request

import (
	"encoding/json"
	"testing"
)

func TestOrderWebhookRequest_ToOrder(t *testing.T) {
	payload := `{
		"id": 5678901234,
		"admin_graphql_api_id": "gid://shopify/Order/5678901234",
		"email": "buyer@example.com",
		"customer": {"id": 111, "admin_graphql_api_id": "gid://shopify/Customer/111", "first_name": "Ana", "last_name": "Souza"},
		"billing_address": {"country_code": "BR"},
		"shipping_address": {"country_code": "PT"},
		"line_items": [
			{"variant_id": 42, "quantity": 2, "title": "Europe 5GB"},
			{"variant_id": 0, "quantity": 1, "title": "Gift wrap"}
		]
	}`

	var req OrderWebhookRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := req.ToOrder("shop.example.com", "US")
	if order.ID != "gid://shopify/Order/5678901234" {
		t.Fatalf("expected gid as order id, got %q", order.ID)
	}
	if order.ShopDomain != "shop.example.com" {
		t.Fatalf("unexpected shop domain %q", order.ShopDomain)
	}
	if order.Email != "buyer@example.com" {
		t.Fatalf("unexpected email %q", order.Email)
	}
	if order.CustomerID != "gid://shopify/Customer/111" {
		t.Fatalf("unexpected customer id %q", order.CustomerID)
	}
	if order.CountryCode != "BR" {
		t.Fatalf("expected billing country to win, got %q", order.CountryCode)
	}
	if len(order.LineItems) != 1 {
		t.Fatalf("expected variant-less items dropped, got %d items", len(order.LineItems))
	}
	if order.LineItems[0].VariantID != "42" || order.LineItems[0].Quantity != 2 {
		t.Fatalf("unexpected line item: %+v", order.LineItems[0])
	}
}

func TestOrderWebhookRequest_ToOrder_Fallbacks(t *testing.T) {
	req := OrderWebhookRequest{
		ID:           777,
		ContactEmail: "contact@example.com",
		Customer:     &WebhookCustomer{ID: 12},
		LineItems:    []WebhookLineItem{{VariantID: 9, Quantity: 1}},
	}

	order := req.ToOrder("shop.example.com", "US")
	if order.ID != "777" {
		t.Fatalf("expected numeric id fallback, got %q", order.ID)
	}
	if order.Email != "contact@example.com" {
		t.Fatalf("unexpected email %q", order.Email)
	}
	if order.CustomerID != "12" {
		t.Fatalf("expected numeric customer id fallback, got %q", order.CustomerID)
	}
	if order.CountryCode != "US" {
		t.Fatalf("expected fallback country, got %q", order.CountryCode)
	}
}

func TestOrderWebhookRequest_ToOrder_NonPositiveQuantityDropped(t *testing.T) {
	req := OrderWebhookRequest{
		ID: 777,
		LineItems: []WebhookLineItem{
			{VariantID: 9, Quantity: 0},
			{VariantID: 10, Quantity: -2},
			{VariantID: 11, Quantity: 1},
		},
	}

	order := req.ToOrder("shop.example.com", "US")
	if len(order.LineItems) != 1 {
		t.Fatalf("expected non-positive quantities dropped, got %+v", order.LineItems)
	}
	if order.LineItems[0].VariantID != "11" {
		t.Fatalf("unexpected surviving item: %+v", order.LineItems[0])
	}
}

func TestOrderWebhookRequest_ToOrder_EmptyID(t *testing.T) {
	order := OrderWebhookRequest{}.ToOrder("shop.example.com", "US")
	if order.ID != "" {
		t.Fatalf("expected empty id, got %q", order.ID)
	}
}
