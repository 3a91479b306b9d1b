package entities

import (
	"strings"
	"time"
)

// EsimState represents the provider-side lifecycle of a provisioned eSIM.

type EsimState string

const (
	EsimStateActive     EsimState = "active"
	EsimStateTerminated EsimState = "terminated"
	EsimStateCancelled  EsimState = "cancelled"
)

// Esim is a provisioned connectivity profile held by a provider-side
// customer, addressed by its hardware identifier (ICCID).
type Esim struct {
	ICCID           string    `json:"iccid"`
	ProviderAssetID string    `json:"provider_asset_id"`
	State           EsimState `json:"state"`
	Plans           []Plan    `json:"plans"`
}

// Dead reports whether the eSIM can no longer receive top-ups.
func (e Esim) Dead() bool {
	switch EsimState(strings.ToLower(strings.TrimSpace(string(e.State)))) {
	case EsimStateTerminated, EsimStateCancelled:
		return true
	}
	return false
}

// Plan is a data allowance attached to an eSIM.
//
// Provider quirks:
//   - ActivatedAt is nil or the zero date while the plan has never been
//     activated on a device; both forms occur in the wild.
//   - StartAt may be absent on legacy plans.
type Plan struct {
	PlanTypeID     string     `json:"plan_type_id"`
	QuotaBytes     int64      `json:"quota_bytes"`
	RemainingBytes int64      `json:"remaining_bytes"`
	ActivatedAt    *time.Time `json:"activated_at"`
	StartAt        *time.Time `json:"start_at"`
	NetworkStatus  string     `json:"network_status"`
}

// Activated reports whether the plan was ever activated on a device.
func (p Plan) Activated() bool {
	return p.ActivatedAt != nil && !p.ActivatedAt.IsZero()
}

// NetworkActive reports whether the provider considers the plan live on the
// network.
func (p Plan) NetworkActive() bool {
	switch strings.ToLower(strings.TrimSpace(p.NetworkStatus)) {
	case "active", "enabled":
		return true
	}
	return false
}

// CreatedEsim is the provider response for a newly issued eSIM, carrying
// everything the buyer needs to install the profile.
type CreatedEsim struct {
	ProviderAssetID string `json:"provider_asset_id"`
	ICCID           string `json:"iccid"`
	ActivationCode  string `json:"activation_code"`
	ManualCode      string `json:"manual_code"`
	SMDPAddress     string `json:"smdp_address"`
	APN             string `json:"apn"`
}
