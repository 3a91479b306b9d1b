package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"
)

var ErrMissingShopDomain = errors.New("missing SHOP_DOMAIN")
var ErrMissingAdminToken = errors.New("missing SHOPIFY_ADMIN_TOKEN")
var ErrCommerceClientNotConfigured = errors.New("commerce client not configured")

const (
	adminAPIVersion = "2024-07"
	requestTimeout  = 15 * time.Second
)

// ShopifyGraphQLClient talks to the Shopify Admin GraphQL API. It is the
// service's only persistence: all orchestrator state is stored as metafields
// on Shopify's own order, customer and variant records.
//
// In mock mode (COMMERCE_MOCK) an in-memory map stands in for the API, which
// is enough to run the whole flow locally without a shop.

type ShopifyGraphQLClient struct {
	shopDomain  string
	accessToken string
	namespace   string
	httpClient  *http.Client

	mockMode bool
	mu       sync.Mutex
	mockData map[string]map[string]string
}

var _ interfaces.IOrderRecordStore = (*ShopifyGraphQLClient)(nil)

func NewShopifyGraphQLClient(shopDomain, accessToken string) (*ShopifyGraphQLClient, error) {
	namespace := strings.TrimSpace(os.Getenv("METAFIELD_NAMESPACE"))
	if namespace == "" {
		namespace = "esim_bridge"
	}

	if isCommerceMockEnabled() {
		log.Printf("[commerce][client] mock mode enabled")
		return &ShopifyGraphQLClient{
			shopDomain: shopDomain,
			namespace:  namespace,
			mockMode:   true,
			mockData:   map[string]map[string]string{},
		}, nil
	}

	if strings.TrimSpace(shopDomain) == "" {
		log.Printf("[commerce][client] missing SHOP_DOMAIN")
		return nil, ErrMissingShopDomain
	}
	if strings.TrimSpace(accessToken) == "" {
		log.Printf("[commerce][client] missing SHOPIFY_ADMIN_TOKEN")
		return nil, ErrMissingAdminToken
	}
	log.Printf("[commerce][client] Shopify Admin client initialized shop=%s", shopDomain)

	return &ShopifyGraphQLClient{
		shopDomain:  shopDomain,
		accessToken: accessToken,
		namespace:   namespace,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}, nil
}

const readFieldsQuery = `query ReadFields($id: ID!, $namespace: String!) {
  node(id: $id) {
    ... on HasMetafields {
      metafields(first: 32, namespace: $namespace) {
        nodes { key value }
      }
    }
  }
}`

func (c *ShopifyGraphQLClient) ReadFields(ctx context.Context, ownerID string, keys []string) (map[string]string, error) {
	if c != nil && c.mockMode {
		c.mu.Lock()
		defer c.mu.Unlock()
		out := map[string]string{}
		for _, key := range keys {
			if v, ok := c.mockData[ownerID][key]; ok {
				out[key] = v
			}
		}
		return out, nil
	}
	if c == nil || c.httpClient == nil {
		return nil, ErrCommerceClientNotConfigured
	}

	var resp struct {
		Node *struct {
			Metafields struct {
				Nodes []struct {
					Key   string `json:"key"`
					Value string `json:"value"`
				} `json:"nodes"`
			} `json:"metafields"`
		} `json:"node"`
	}
	err := c.execute(ctx, readFieldsQuery, map[string]any{"id": ownerID, "namespace": c.namespace}, &resp)
	if err != nil {
		return nil, err
	}

	out := map[string]string{}
	if resp.Node == nil {
		return out, nil
	}
	wanted := map[string]bool{}
	for _, key := range keys {
		wanted[key] = true
	}
	for _, node := range resp.Node.Metafields.Nodes {
		if wanted[node.Key] {
			out[node.Key] = node.Value
		}
	}
	return out, nil
}

const writeFieldsMutation = `mutation WriteFields($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    userErrors { field message }
  }
}`

func (c *ShopifyGraphQLClient) WriteFields(ctx context.Context, ownerID string, fields []interfaces.MetafieldInput) ([]interfaces.UserError, error) {
	if c != nil && c.mockMode {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.mockData[ownerID] == nil {
			c.mockData[ownerID] = map[string]string{}
		}
		for _, f := range fields {
			c.mockData[ownerID][f.Key] = f.Value
		}
		return nil, nil
	}
	if c == nil || c.httpClient == nil {
		return nil, ErrCommerceClientNotConfigured
	}

	inputs := make([]map[string]string, 0, len(fields))
	for _, f := range fields {
		inputs = append(inputs, map[string]string{
			"ownerId":   ownerID,
			"namespace": c.namespace,
			"key":       f.Key,
			"type":      f.Type,
			"value":     f.Value,
		})
	}

	var resp struct {
		MetafieldsSet struct {
			UserErrors []struct {
				Field   []string `json:"field"`
				Message string   `json:"message"`
			} `json:"userErrors"`
		} `json:"metafieldsSet"`
	}
	err := c.execute(ctx, writeFieldsMutation, map[string]any{"metafields": inputs}, &resp)
	if err != nil {
		return nil, err
	}

	var userErrors []interfaces.UserError
	for _, ue := range resp.MetafieldsSet.UserErrors {
		userErrors = append(userErrors, interfaces.UserError{
			Field:   strings.Join(ue.Field, "."),
			Message: ue.Message,
		})
	}
	return userErrors, nil
}

const searchOrdersQuery = `query SearchOrders($query: String!) {
  orders(first: 100, query: $query) {
    nodes { id email }
  }
}`

func (c *ShopifyGraphQLClient) SearchOrders(ctx context.Context, query string) ([]entities.OrderRef, error) {
	if c != nil && c.mockMode {
		c.mu.Lock()
		defer c.mu.Unlock()
		var refs []entities.OrderRef
		for ownerID, fields := range c.mockData {
			if _, ok := fields["esims"]; ok {
				refs = append(refs, entities.OrderRef{ID: ownerID, Email: fields["email"], ShopDomain: c.shopDomain})
			}
		}
		return refs, nil
	}
	if c == nil || c.httpClient == nil {
		return nil, ErrCommerceClientNotConfigured
	}

	var resp struct {
		Orders struct {
			Nodes []struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"nodes"`
		} `json:"orders"`
	}
	err := c.execute(ctx, searchOrdersQuery, map[string]any{"query": query}, &resp)
	if err != nil {
		return nil, err
	}

	refs := make([]entities.OrderRef, 0, len(resp.Orders.Nodes))
	for _, node := range resp.Orders.Nodes {
		refs = append(refs, entities.OrderRef{ID: node.ID, Email: node.Email, ShopDomain: c.shopDomain})
	}
	return refs, nil
}

// execute posts one GraphQL operation and decodes "data" into out. GraphQL
// transport succeeds with errors in the body, so both layers are checked.
func (c *ShopifyGraphQLClient) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.shopDomain, adminAPIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[commerce][client] request failed err=%v", err)
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[commerce][client] unexpected status=%d body_len=%d", resp.StatusCode, len(body))
		return fmt.Errorf("commerce api returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		log.Printf("[commerce][client] graphql errors: %s", strings.Join(msgs, "; "))
		return fmt.Errorf("commerce api errors: %s", strings.Join(msgs, "; "))
	}
	if out != nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}

func isCommerceMockEnabled() bool {
	for _, key := range []string{"COMMERCE_MOCK", "SHOPIFY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
