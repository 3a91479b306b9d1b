package response

import (
	"esim_bridge/internal/domain/entities"
)

type FulfillmentItemResponse struct {
	VariantID      string `json:"variant_id"`
	Action         string `json:"action"`
	UnitsRequested int    `json:"units_requested"`
	UnitsFulfilled int    `json:"units_fulfilled"`
	Error          string `json:"error,omitempty"`
}

type FulfillmentResponse struct {
	OrderID    string                    `json:"order_id"`
	Status     string                    `json:"status"`
	SkipReason string                    `json:"skip_reason,omitempty"`
	Items      []FulfillmentItemResponse `json:"items,omitempty"`
}

// FromFulfillmentOutcome collapses the outcome flags into a single status the
// webhook sender can log: processed, skipped or partial_failure.
func FromFulfillmentOutcome(out entities.FulfillmentOutcome) FulfillmentResponse {
	resp := FulfillmentResponse{
		OrderID:    out.OrderID,
		SkipReason: out.SkipReason,
	}
	switch {
	case out.Skipped:
		resp.Status = "skipped"
	case out.Processed:
		resp.Status = "processed"
	default:
		resp.Status = "partial_failure"
	}
	for _, item := range out.ItemResults {
		resp.Items = append(resp.Items, FulfillmentItemResponse{
			VariantID:      item.VariantID,
			Action:         string(item.Action),
			UnitsRequested: item.UnitsRequested,
			UnitsFulfilled: item.UnitsFulfilled,
			Error:          item.Error,
		})
	}
	return resp
}
