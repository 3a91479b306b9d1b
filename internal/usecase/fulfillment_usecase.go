package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"
)

var (
	ErrMissingOrderID         = errors.New("missing order id")
	ErrStateRepoNotConfigured = errors.New("fulfillment state repository not configured")
	ErrNotifierNotConfigured  = errors.New("notifier not configured")
	ErrLockNotConfigured      = errors.New("processing lock not configured")
	ErrResolversNotConfigured = errors.New("resolvers not configured")
	errUnsupportedItemAction  = errors.New("unsupported line item action")
)

// IFulfillmentUseCase encapsulates the "paid order to provisioned eSIMs"
// behavior.
//
// Requested behavior:
//   - Fulfill each commerce order at most once despite webhook retries,
//     concurrent deliveries and partial failures.

type IFulfillmentUseCase interface {
	ProcessOrder(ctx context.Context, order entities.Order) (entities.FulfillmentOutcome, error)
}

// FulfillmentUseCase is the top-level state machine per order:
// idempotency check -> lock -> resolve customer -> per-item execution ->
// partial-failure aggregation -> mark-processed decision -> lock release.
//
// All step faults are folded into the outcome rather than raised, so the
// webhook handler can always answer with a terminal response and the sender
// never retries the order into an infinite loop. The "needs attention" signal
// is ProcessedFlag=false plus the escalation emails already sent.
type FulfillmentUseCase struct {
	state     interfaces.IFulfillmentStateRepository
	provider  interfaces.IProvisioningProvider
	notifier  interfaces.INotifier
	lock      *ProcessingLock
	customers *CustomerResolver
	items     *LineItemResolver

	opsEmail string

	// now is swappable in tests.
	now func() time.Time
}

var _ IFulfillmentUseCase = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(
	state interfaces.IFulfillmentStateRepository,
	provider interfaces.IProvisioningProvider,
	notifier interfaces.INotifier,
	lock *ProcessingLock,
	customers *CustomerResolver,
	items *LineItemResolver,
	opsEmail string,
) *FulfillmentUseCase {
	return &FulfillmentUseCase{
		state:     state,
		provider:  provider,
		notifier:  notifier,
		lock:      lock,
		customers: customers,
		items:     items,
		opsEmail:  opsEmail,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *FulfillmentUseCase) ProcessOrder(ctx context.Context, order entities.Order) (entities.FulfillmentOutcome, error) {
	outcome := entities.FulfillmentOutcome{OrderID: order.ID}

	order.ID = strings.TrimSpace(order.ID)
	if order.ID == "" {
		return outcome, ErrMissingOrderID
	}
	if u.state == nil {
		return outcome, ErrStateRepoNotConfigured
	}
	if u.provider == nil {
		return outcome, ErrProviderNotConfigured
	}
	if u.notifier == nil {
		return outcome, ErrNotifierNotConfigured
	}
	if u.lock == nil {
		return outcome, ErrLockNotConfigured
	}
	if u.customers == nil || u.items == nil {
		return outcome, ErrResolversNotConfigured
	}

	log.Printf("[fulfillment][usecase] process start order_id=%s shop=%s items=%d", order.ID, order.ShopDomain, len(order.LineItems))

	// Idempotent replay: a processed order must never trigger provisioning
	// calls again.
	processed, err := u.state.GetProcessed(ctx, order.ID)
	if err != nil {
		log.Printf("[fulfillment][usecase] processed-flag read failed order_id=%s err=%v", order.ID, err)
		return outcome, err
	}
	if processed {
		log.Printf("[fulfillment][usecase] already processed, skipping order_id=%s", order.ID)
		outcome.Skipped = true
		outcome.SkipReason = "already_processed"
		return outcome, nil
	}

	acq, err := u.lock.TryAcquire(ctx, order.ID)
	if err != nil {
		log.Printf("[fulfillment][usecase] lock acquire failed order_id=%s err=%v", order.ID, err)
		return outcome, err
	}
	if !acq.Acquired {
		// Another delivery is handling this order; normal outcome.
		log.Printf("[fulfillment][usecase] lock not acquired order_id=%s reason=%s", order.ID, acq.Reason)
		outcome.Skipped = true
		outcome.SkipReason = acq.Reason
		return outcome, nil
	}
	defer func() {
		rel, relErr := u.lock.Release(ctx, order.ID, acq.Token)
		if relErr != nil {
			log.Printf("[fulfillment][usecase] lock release failed order_id=%s err=%v", order.ID, relErr)
			return
		}
		if !rel.Released {
			log.Printf("[fulfillment][usecase] lock release refused order_id=%s reason=%s", order.ID, rel.Reason)
		}
	}()

	customerID, err := u.customers.Resolve(ctx, ResolveCustomerInput{
		CommerceCustomerID: order.CustomerID,
		Email:              order.Email,
		FirstName:          order.FirstName,
		LastName:           order.LastName,
		CountryCode:        order.CountryCode,
		TraceTag:           traceTag(order.ID),
	})
	if err != nil {
		// Fatal for the whole order: no line item can be fulfilled without a
		// provider-side customer. The order stays unprocessed for a retry.
		log.Printf("[fulfillment][usecase] customer resolution failed order_id=%s err=%v", order.ID, err)
		outcome.PartialFailure = true
		return outcome, nil
	}
	log.Printf("[fulfillment][usecase] customer resolved order_id=%s provisioning_customer_id=%s", order.ID, customerID)

	// Units completed by a prior partial attempt are skipped on retry so a
	// redelivery cannot double-provision them.
	fulfilled, err := u.state.FulfilledUnits(ctx, order.ID)
	if err != nil {
		log.Printf("[fulfillment][usecase] fulfilled-units read failed, assuming none order_id=%s err=%v", order.ID, err)
		fulfilled = nil
	}
	if fulfilled == nil {
		fulfilled = map[string]int{}
	}

	partial := false
	for idx, item := range order.LineItems {
		res := u.processLineItem(ctx, order, customerID, idx, item, fulfilled)
		if res.Error != "" {
			partial = true
		}
		outcome.ItemResults = append(outcome.ItemResults, res)
	}

	outcome.PartialFailure = partial
	if partial {
		// Leave the processed flag unset so a redelivery of the same order id
		// re-enters the idempotency check and retries the failed items.
		log.Printf("[fulfillment][usecase] partial failure, order left unprocessed order_id=%s", order.ID)
		return outcome, nil
	}

	if err := u.state.MarkProcessed(ctx, order.ID, u.now()); err != nil {
		log.Printf("[fulfillment][usecase] mark-processed failed order_id=%s err=%v", order.ID, err)
		outcome.PartialFailure = true
		return outcome, nil
	}
	outcome.Processed = true
	log.Printf("[fulfillment][usecase] process success order_id=%s", order.ID)
	return outcome, nil
}

func (u *FulfillmentUseCase) processLineItem(ctx context.Context, order entities.Order, customerID string, idx int, item entities.LineItem, fulfilled map[string]int) entities.LineItemResult {
	res := entities.LineItemResult{VariantID: item.VariantID, UnitsRequested: item.Quantity}

	cfg, err := u.items.Resolve(ctx, item.VariantID)
	if err != nil {
		// A variant without a plan mapping stalls the order forever unless a
		// human fixes the catalog, so it escalates like any other item fault.
		log.Printf("[fulfillment][item] resolution failed order_id=%s variant_id=%s err=%v", order.ID, item.VariantID, err)
		res.Error = err.Error()
		u.escalate(ctx, order, "eSIM fulfillment failed: variant not mapped to a plan",
			escalationDetails(order, item, entities.VariantConfig{}, "", err))
		return res
	}
	res.Action = cfg.Action

	switch cfg.Action {
	case entities.ActionTopUp:
		u.processTopUpItem(ctx, order, customerID, idx, item, cfg, fulfilled, &res)
	case entities.ActionProvision:
		u.processProvisionItem(ctx, order, customerID, idx, item, cfg, fulfilled, &res)
	default:
		log.Printf("[fulfillment][item] unsupported action order_id=%s variant_id=%s action=%q", order.ID, item.VariantID, cfg.Action)
		res.Error = errUnsupportedItemAction.Error()
	}
	return res
}

func (u *FulfillmentUseCase) processTopUpItem(ctx context.Context, order entities.Order, customerID string, idx int, item entities.LineItem, cfg entities.VariantConfig, fulfilled map[string]int, res *entities.LineItemResult) {
	esims, err := u.provider.GetCustomerEsims(ctx, customerID)
	if err != nil {
		log.Printf("[fulfillment][topup] esim fetch failed order_id=%s variant_id=%s err=%v", order.ID, item.VariantID, err)
		res.Error = err.Error()
		u.escalate(ctx, order, "eSIM top-up failed: could not load customer eSIMs",
			escalationDetails(order, item, cfg, "", err))
		return
	}

	target := SelectTopUpTarget(esims, cfg.PlanID)
	if target == nil {
		log.Printf("[fulfillment][topup] no matching esim order_id=%s variant_id=%s plan_id=%s", order.ID, item.VariantID, cfg.PlanID)
		res.Error = "no matching esim for top-up"
		u.escalate(ctx, order, "eSIM top-up unmatched: no eSIM with the target plan",
			escalationDetails(order, item, cfg, "", errors.New("no esim carries the target plan type")))
		return
	}
	log.Printf("[fulfillment][topup] target selected order_id=%s variant_id=%s iccid=%s remaining=%d", order.ID, item.VariantID, target.ICCID, target.Plan.RemainingBytes)

	key := fulfilledKey(idx, item.VariantID)
	done := fulfilled[key]
	var unitErrs []string
	for unit := 0; unit < item.Quantity; unit++ {
		if unit < done {
			log.Printf("[fulfillment][topup] unit already fulfilled, skipping order_id=%s variant_id=%s unit=%d", order.ID, item.VariantID, unit)
			res.UnitsFulfilled++
			continue
		}
		if _, err := u.provider.CreateTopUp(ctx, target.ICCID, cfg.PlanID); err != nil {
			// Other units still attempt; each failure escalates on its own.
			log.Printf("[fulfillment][topup] unit failed order_id=%s variant_id=%s unit=%d err=%v", order.ID, item.VariantID, unit, err)
			unitErrs = append(unitErrs, err.Error())
			u.escalate(ctx, order, "eSIM top-up call failed",
				escalationDetails(order, item, cfg, target.ICCID, err))
			continue
		}
		res.UnitsFulfilled++
		fulfilled[key]++
		u.persistFulfilledUnits(ctx, order.ID, fulfilled)
		log.Printf("[fulfillment][topup] unit success order_id=%s variant_id=%s unit=%d iccid=%s", order.ID, item.VariantID, unit, target.ICCID)
	}
	if len(unitErrs) > 0 {
		res.Error = strings.Join(unitErrs, "; ")
	}
}

func (u *FulfillmentUseCase) processProvisionItem(ctx context.Context, order entities.Order, customerID string, idx int, item entities.LineItem, cfg entities.VariantConfig, fulfilled map[string]int, res *entities.LineItemResult) {
	key := fulfilledKey(idx, item.VariantID)
	done := fulfilled[key]
	var unitErrs []string
	for unit := 0; unit < item.Quantity; unit++ {
		if unit < done {
			log.Printf("[fulfillment][provision] unit already fulfilled, skipping order_id=%s variant_id=%s unit=%d", order.ID, item.VariantID, unit)
			res.UnitsFulfilled++
			continue
		}

		created, err := u.provider.CreateEsim(ctx, cfg.PlanID, customerID, traceTag(order.ID))
		if err != nil {
			log.Printf("[fulfillment][provision] create failed order_id=%s variant_id=%s unit=%d err=%v", order.ID, item.VariantID, unit, err)
			unitErrs = append(unitErrs, err.Error())
			continue
		}
		log.Printf("[fulfillment][provision] esim created order_id=%s variant_id=%s iccid=%s asset_id=%s", order.ID, item.VariantID, created.ICCID, created.ProviderAssetID)

		// The provider already took an effect the system cannot re-derive;
		// failing to record it is the most severe failure class and demands
		// human remediation with enough detail to finish the write by hand.
		asset := entities.RecordedAsset{
			ICCID:           created.ICCID,
			ProviderAssetID: created.ProviderAssetID,
			PlanID:          cfg.PlanID,
			VariantID:       item.VariantID,
		}
		if err := u.state.AppendRecordedAsset(ctx, order.ID, asset); err != nil {
			log.Printf("[fulfillment][provision] record persist failed order_id=%s iccid=%s err=%v", order.ID, created.ICCID, err)
			unitErrs = append(unitErrs, fmt.Sprintf("esim created but not recorded: %v", err))
			u.escalate(ctx, order, "MANUAL ACTION: eSIM created but not recorded on the order",
				escalationDetails(order, item, cfg, created.ICCID, err)+
					fmt.Sprintf("<p>provider_asset_id=%s</p>", html.EscapeString(created.ProviderAssetID)))
			continue
		}

		res.UnitsFulfilled++
		fulfilled[key]++
		u.persistFulfilledUnits(ctx, order.ID, fulfilled)

		// A missed buyer email is recoverable by support; it never blocks the
		// order from completing.
		u.sendDeliveryEmail(ctx, order, item, created)
	}
	if len(unitErrs) > 0 {
		res.Error = strings.Join(unitErrs, "; ")
	}
}

func (u *FulfillmentUseCase) persistFulfilledUnits(ctx context.Context, orderID string, fulfilled map[string]int) {
	if err := u.state.SetFulfilledUnits(ctx, orderID, fulfilled); err != nil {
		log.Printf("[fulfillment][usecase] fulfilled-units persist failed order_id=%s err=%v", orderID, err)
	}
}

func (u *FulfillmentUseCase) sendDeliveryEmail(ctx context.Context, order entities.Order, item entities.LineItem, created entities.CreatedEsim) {
	if strings.TrimSpace(order.Email) == "" {
		log.Printf("[fulfillment][notify] no buyer email, skipping delivery order_id=%s iccid=%s", order.ID, created.ICCID)
		return
	}
	n := entities.Notification{
		To:       order.Email,
		Subject:  fmt.Sprintf("Your eSIM for %s is ready", item.Title),
		HTMLBody: deliveryEmailBody(order, item, created),
	}
	if _, err := u.notifier.Send(ctx, n); err != nil {
		log.Printf("[fulfillment][notify] delivery email failed order_id=%s iccid=%s err=%v", order.ID, created.ICCID, err)
		return
	}
	log.Printf("[fulfillment][notify] delivery email sent order_id=%s iccid=%s to=%s", order.ID, created.ICCID, order.Email)
}

func (u *FulfillmentUseCase) escalate(ctx context.Context, order entities.Order, subject, htmlBody string) {
	if strings.TrimSpace(u.opsEmail) == "" {
		log.Printf("[fulfillment][escalate] no ops email configured order_id=%s subject=%q", order.ID, subject)
		return
	}
	n := entities.Notification{
		To:       u.opsEmail,
		Subject:  fmt.Sprintf("[%s] %s (order %s)", order.ShopDomain, subject, order.ID),
		HTMLBody: htmlBody,
	}
	if _, err := u.notifier.Send(ctx, n); err != nil {
		log.Printf("[fulfillment][escalate] escalation send failed order_id=%s err=%v", order.ID, err)
		return
	}
	log.Printf("[fulfillment][escalate] escalation sent order_id=%s subject=%q", order.ID, subject)
}

func traceTag(orderID string) string {
	return "order:" + orderID
}

// fulfilledKey identifies one line item in the persisted fulfilled-units map.
// The item's position is part of the key: an order can carry several line
// items for the same variant, and each owes its own units.
func fulfilledKey(idx int, variantID string) string {
	return fmt.Sprintf("%d:%s", idx, variantID)
}

func escalationDetails(order entities.Order, item entities.LineItem, cfg entities.VariantConfig, iccid string, cause error) string {
	esc := html.EscapeString
	b := &strings.Builder{}
	fmt.Fprintf(b, "<p>order_id=%s</p>", esc(order.ID))
	fmt.Fprintf(b, "<p>shop=%s</p>", esc(order.ShopDomain))
	fmt.Fprintf(b, "<p>buyer=%s %s &lt;%s&gt;</p>", esc(order.FirstName), esc(order.LastName), esc(order.Email))
	fmt.Fprintf(b, "<p>variant_id=%s title=%s qty=%d</p>", esc(item.VariantID), esc(item.Title), item.Quantity)
	fmt.Fprintf(b, "<p>plan_id=%s action=%s</p>", esc(cfg.PlanID), esc(string(cfg.Action)))
	if iccid != "" {
		fmt.Fprintf(b, "<p>iccid=%s</p>", esc(iccid))
	}
	if cause != nil {
		fmt.Fprintf(b, "<p>error=%s</p>", esc(cause.Error()))
	}
	return b.String()
}

func deliveryEmailBody(order entities.Order, item entities.LineItem, created entities.CreatedEsim) string {
	esc := html.EscapeString
	b := &strings.Builder{}
	fmt.Fprintf(b, "<h2>Your eSIM is ready</h2>")
	fmt.Fprintf(b, "<p>Hi %s, thanks for your order %s.</p>", esc(order.FirstName), esc(order.ID))
	fmt.Fprintf(b, "<p>Product: %s</p>", esc(item.Title))
	fmt.Fprintf(b, "<p>ICCID: %s</p>", esc(created.ICCID))
	if created.ActivationCode != "" {
		fmt.Fprintf(b, "<p>Activation code: <code>%s</code></p>", esc(created.ActivationCode))
	}
	if created.SMDPAddress != "" {
		fmt.Fprintf(b, "<p>SM-DP+ address: %s</p>", esc(created.SMDPAddress))
	}
	if created.ManualCode != "" {
		fmt.Fprintf(b, "<p>Manual code: %s</p>", esc(created.ManualCode))
	}
	if created.APN != "" {
		fmt.Fprintf(b, "<p>APN: %s</p>", esc(created.APN))
	}
	return b.String()
}
