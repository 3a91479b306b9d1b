package usecase

import (
	"strings"

	"esim_bridge/internal/domain/entities"
)

// TopUpTarget is the single best existing eSIM plan to recharge for a top-up
// line item.
type TopUpTarget struct {
	ICCID           string
	ProviderAssetID string
	Plan            entities.Plan
}

// SelectTopUpTarget picks which of the customer's existing eSIMs a top-up
// should land on.
//
// A customer may hold several eSIMs bought at different times; blindly
// recharging the most recent one would top up the wrong trip. Instead the
// plan closest to exhaustion wins:
//
//  1. lowest remaining bytes
//  2. among equal remaining bytes, an activated plan beats a never-activated one
//  3. among remaining ties, the earliest start time
//
// Terminated and cancelled eSIMs are excluded. Plan-type ids compare
// case-insensitively after trimming. Returns nil when no candidate plan
// exists anywhere across the customer's eSIMs; the caller reports that as an
// unmatched top-up rather than silently skipping it.
func SelectTopUpTarget(esims []entities.Esim, targetPlanTypeID string) *TopUpTarget {
	target := strings.ToLower(strings.TrimSpace(targetPlanTypeID))
	if target == "" {
		return nil
	}

	var best *TopUpTarget
	for _, e := range esims {
		if e.Dead() {
			continue
		}
		for _, p := range e.Plans {
			if strings.ToLower(strings.TrimSpace(p.PlanTypeID)) != target {
				continue
			}
			candidate := &TopUpTarget{ICCID: e.ICCID, ProviderAssetID: e.ProviderAssetID, Plan: p}
			if best == nil || betterTopUpTarget(candidate.Plan, best.Plan) {
				best = candidate
			}
		}
	}
	return best
}

// betterTopUpTarget reports whether a should replace b. Ties keep b, so
// repeated invocations over the same input are deterministic.
func betterTopUpTarget(a, b entities.Plan) bool {
	if a.RemainingBytes != b.RemainingBytes {
		return a.RemainingBytes < b.RemainingBytes
	}
	if a.Activated() != b.Activated() {
		return a.Activated()
	}
	switch {
	case a.StartAt == nil:
		return false
	case b.StartAt == nil:
		return true
	default:
		return a.StartAt.Before(*b.StartAt)
	}
}
