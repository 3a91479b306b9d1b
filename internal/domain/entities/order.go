package entities

// LineItemAction tells the orchestrator what a purchased variant maps to on
// the provisioning side.
//
// Domain notes:
//   - "provision" issues a brand new eSIM for the plan.
//   - "top-up" recharges an eSIM the customer already owns.
//   - An empty action means the variant is not an eSIM product and the line
//     item cannot be fulfilled by this service.

type LineItemAction string

const (
	ActionProvision LineItemAction = "provision"
	ActionTopUp     LineItemAction = "top-up"
)

// Order is the inbound commerce order as seen by the fulfillment bridge.
//
// The order itself is immutable once received; the service only appends
// metafields to its record in the commerce platform (processed flag, lock
// fields, recorded eSIMs, usage-alert keys).
type Order struct {
	ID          string     `json:"id"`
	ShopDomain  string     `json:"shop_domain"`
	Email       string     `json:"email"`
	CustomerID  string     `json:"customer_id"` // empty for guest checkouts
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	CountryCode string     `json:"country_code"`
	LineItems   []LineItem `json:"line_items"`
}

// LineItem is one purchased position of an order.
type LineItem struct {
	VariantID string `json:"variant_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
}

// VariantConfig is the catalog mapping of a variant to a provisioning plan,
// stored as variant metafields in the commerce platform.
type VariantConfig struct {
	PlanID string         `json:"plan_id"`
	Action LineItemAction `json:"action"`
}

// CustomerProfile is the buyer profile handed to the provisioning provider
// when a new provider-side customer has to be created.
type CustomerProfile struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CountryCode string `json:"country_code"`
}

// OrderRef is a lightweight order reference returned by record-store searches
// (usage-alert scans only need the id and the buyer email).
type OrderRef struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	ShopDomain string `json:"shop_domain"`
}
