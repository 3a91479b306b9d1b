package entities

import "time"

// LockState mirrors the processing-lock metafields persisted on an order
// record. There is no external lock service; the order record itself is the
// only durable store available.
type LockState struct {
	Held       bool      `json:"held"`
	Token      string    `json:"token"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Stale reports whether a held lock is older than the TTL and may be taken
// over (the recovery path for workers that crashed mid-processing).
func (l LockState) Stale(ttl time.Duration, now time.Time) bool {
	if !l.Held {
		return false
	}
	if l.AcquiredAt.IsZero() {
		return true
	}
	return now.Sub(l.AcquiredAt) >= ttl
}

// RecordedAsset is one eSIM created for an order, persisted back into the
// order record before the unit counts as fulfilled.
type RecordedAsset struct {
	ICCID           string `json:"iccid"`
	ProviderAssetID string `json:"provider_asset_id"`
	PlanID          string `json:"plan_id"`
	VariantID       string `json:"variant_id"`
}

// LineItemResult is the per-item outcome reported by the orchestrator.
type LineItemResult struct {
	VariantID      string         `json:"variant_id"`
	Action         LineItemAction `json:"action"`
	UnitsRequested int            `json:"units_requested"`
	UnitsFulfilled int            `json:"units_fulfilled"`
	Error          string         `json:"error,omitempty"`
}

// FulfillmentOutcome summarizes one pass over an order.
//
// PartialFailure=true with Processed=false is the "needs attention" signal:
// escalation notifications were already sent and a later redelivery of the
// same order id will retry the failed items.
type FulfillmentOutcome struct {
	OrderID        string           `json:"order_id"`
	Skipped        bool             `json:"skipped"`
	SkipReason     string           `json:"skip_reason,omitempty"`
	Processed      bool             `json:"processed"`
	PartialFailure bool             `json:"partial_failure"`
	ItemResults    []LineItemResult `json:"item_results,omitempty"`
}

// Notification is a transactional email handed to the notifier, which renders
// and delivers it through the configured email provider.
type Notification struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}
