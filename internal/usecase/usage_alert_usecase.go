package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"math"
	"sort"
	"time"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"
)

var (
	ErrInvalidThreshold = errors.New("invalid usage threshold")
	ErrInvalidLookback  = errors.New("invalid lookback window")
)

// IUsageAlertUseCase runs one usage-threshold scan pass over recently
// fulfilled orders.
type IUsageAlertUseCase interface {
	Run(ctx context.Context, thresholdPercent int, lookback time.Duration) (int, error)
}

// UsageAlertUseCase re-reads the eSIMs recorded on fulfilled orders, computes
// data consumption and mails the buyer once per (threshold, iccid) pair. The
// dedup keys are persisted on the order record, append-only, so repeated scan
// passes (and concurrent service instances) never re-send an alert.
type UsageAlertUseCase struct {
	state    interfaces.IFulfillmentStateRepository
	provider interfaces.IProvisioningProvider
	notifier interfaces.INotifier

	now func() time.Time
}

var _ IUsageAlertUseCase = (*UsageAlertUseCase)(nil)

func NewUsageAlertUseCase(state interfaces.IFulfillmentStateRepository, provider interfaces.IProvisioningProvider, notifier interfaces.INotifier) *UsageAlertUseCase {
	return &UsageAlertUseCase{
		state:    state,
		provider: provider,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run returns the count of orders scanned. Per-order and per-eSIM faults are
// logged and skipped; only store enumeration failure aborts the pass.
func (u *UsageAlertUseCase) Run(ctx context.Context, thresholdPercent int, lookback time.Duration) (int, error) {
	if thresholdPercent <= 0 || thresholdPercent > 100 {
		return 0, ErrInvalidThreshold
	}
	if lookback <= 0 {
		return 0, ErrInvalidLookback
	}
	if u.state == nil {
		return 0, ErrStateRepoNotConfigured
	}
	if u.provider == nil {
		return 0, ErrProviderNotConfigured
	}
	if u.notifier == nil {
		return 0, ErrNotifierNotConfigured
	}

	since := u.now().Add(-lookback)
	log.Printf("[usage][scan] start threshold=%d since=%s", thresholdPercent, since.Format(time.RFC3339))

	refs, err := u.state.SearchOrdersWithAssets(ctx, since)
	if err != nil {
		log.Printf("[usage][scan] order enumeration failed err=%v", err)
		return 0, err
	}

	scanned := 0
	for _, ref := range refs {
		scanned++
		u.scanOrder(ctx, thresholdPercent, ref)
	}
	log.Printf("[usage][scan] done scanned=%d", scanned)
	return scanned, nil
}

func (u *UsageAlertUseCase) scanOrder(ctx context.Context, threshold int, ref entities.OrderRef) {
	assets, err := u.state.RecordedAssets(ctx, ref.ID)
	if err != nil {
		log.Printf("[usage][scan] recorded-assets read failed order_id=%s err=%v", ref.ID, err)
		return
	}
	if len(assets) == 0 {
		return
	}

	keys, err := u.state.AlertKeys(ctx, ref.ID)
	if err != nil {
		log.Printf("[usage][scan] alert-keys read failed order_id=%s err=%v", ref.ID, err)
		return
	}
	sent := make(map[string]bool, len(keys))
	for _, k := range keys {
		sent[k] = true
	}

	for _, asset := range assets {
		plans, err := u.provider.GetEsimPlans(ctx, asset.ICCID)
		if err != nil {
			log.Printf("[usage][scan] plan fetch failed order_id=%s iccid=%s err=%v", ref.ID, asset.ICCID, err)
			continue
		}
		plan := selectCurrentPlan(plans)
		if plan == nil {
			continue
		}

		pct, ok := percentUsed(*plan)
		if !ok {
			log.Printf("[usage][scan] unusable quota, skipping order_id=%s iccid=%s quota=%d", ref.ID, asset.ICCID, plan.QuotaBytes)
			continue
		}
		if pct < threshold {
			continue
		}

		key := alertKey(threshold, asset.ICCID)
		if sent[key] {
			continue
		}
		if ref.Email == "" {
			// Do not persist the key; the alert can still fire once an email
			// becomes available.
			log.Printf("[usage][scan] no buyer email, alert deferred order_id=%s iccid=%s", ref.ID, asset.ICCID)
			continue
		}

		n := entities.Notification{
			To:       ref.Email,
			Subject:  fmt.Sprintf("Your eSIM has used %d%% of its data", pct),
			HTMLBody: usageAlertBody(asset.ICCID, pct, *plan),
		}
		if _, err := u.notifier.Send(ctx, n); err != nil {
			log.Printf("[usage][scan] alert send failed order_id=%s iccid=%s err=%v", ref.ID, asset.ICCID, err)
			continue
		}
		if err := u.state.AppendAlertKey(ctx, ref.ID, key); err != nil {
			// Worst case the next pass re-sends one alert; better than losing it.
			log.Printf("[usage][scan] alert-key persist failed order_id=%s key=%s err=%v", ref.ID, key, err)
		}
		sent[key] = true
		log.Printf("[usage][scan] alert sent order_id=%s iccid=%s percent_used=%d", ref.ID, asset.ICCID, pct)
	}
}

// selectCurrentPlan picks the plan whose consumption represents the eSIM
// "right now", by priority pool:
//
//  1. activated and live on the network
//  2. any activated plan
//  3. any plan with remaining bytes
//  4. newest by start time among all
//
// Within a pool the newest start time wins.
func selectCurrentPlan(plans []entities.Plan) *entities.Plan {
	if len(plans) == 0 {
		return nil
	}

	pools := []func(entities.Plan) bool{
		func(p entities.Plan) bool { return p.Activated() && p.NetworkActive() },
		func(p entities.Plan) bool { return p.Activated() },
		func(p entities.Plan) bool { return p.RemainingBytes > 0 },
		func(entities.Plan) bool { return true },
	}
	for _, match := range pools {
		var pool []entities.Plan
		for _, p := range plans {
			if match(p) {
				pool = append(pool, p)
			}
		}
		if len(pool) == 0 {
			continue
		}
		sort.SliceStable(pool, func(i, j int) bool {
			return planStart(pool[i]).After(planStart(pool[j]))
		})
		return &pool[0]
	}
	return nil
}

func planStart(p entities.Plan) time.Time {
	if p.StartAt == nil {
		return time.Time{}
	}
	return *p.StartAt
}

// percentUsed computes round((quota-remaining)/quota*100), refusing
// non-positive or non-finite quotas.
func percentUsed(p entities.Plan) (int, bool) {
	quota := float64(p.QuotaBytes)
	if quota <= 0 || math.IsNaN(quota) || math.IsInf(quota, 0) {
		return 0, false
	}
	used := quota - float64(p.RemainingBytes)
	pct := math.Round(used / quota * 100)
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return int(pct), true
}

func alertKey(threshold int, iccid string) string {
	return fmt.Sprintf("%d:%s", threshold, iccid)
}

func usageAlertBody(iccid string, pct int, p entities.Plan) string {
	esc := html.EscapeString
	remainingMB := p.RemainingBytes / (1024 * 1024)
	return fmt.Sprintf(
		"<h2>Data usage alert</h2><p>Your eSIM %s has used %d%% of its data plan.</p><p>Remaining: %d MB</p><p>Top up before you run out to stay connected.</p>",
		esc(iccid), pct, remainingMB,
	)
}
