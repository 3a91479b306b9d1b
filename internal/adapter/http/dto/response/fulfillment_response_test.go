package response

import (
	"testing"

	"esim_bridge/internal/domain/entities"
)

func TestFromFulfillmentOutcome_Status(t *testing.T) {
	cases := []struct {
		name    string
		outcome entities.FulfillmentOutcome
		status  string
	}{
		{
			name:    "skipped wins over everything",
			outcome: entities.FulfillmentOutcome{OrderID: "o-1", Skipped: true, SkipReason: "already_processed"},
			status:  "skipped",
		},
		{
			name:    "processed",
			outcome: entities.FulfillmentOutcome{OrderID: "o-1", Processed: true},
			status:  "processed",
		},
		{
			name:    "partial failure",
			outcome: entities.FulfillmentOutcome{OrderID: "o-1", PartialFailure: true},
			status:  "partial_failure",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromFulfillmentOutcome(tc.outcome)
			if got.Status != tc.status {
				t.Fatalf("expected status %q, got %q", tc.status, got.Status)
			}
			if got.OrderID != tc.outcome.OrderID {
				t.Fatalf("expected order id carried over, got %q", got.OrderID)
			}
		})
	}
}

func TestFromFulfillmentOutcome_Items(t *testing.T) {
	out := entities.FulfillmentOutcome{
		OrderID:   "o-1",
		Processed: true,
		ItemResults: []entities.LineItemResult{
			{VariantID: "v-1", Action: entities.ActionProvision, UnitsRequested: 2, UnitsFulfilled: 2},
			{VariantID: "v-2", Action: entities.ActionTopUp, UnitsRequested: 1, UnitsFulfilled: 0, Error: "no compatible esim"},
		},
	}

	got := FromFulfillmentOutcome(out)
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].Action != "provision" || got.Items[1].Action != "top-up" {
		t.Fatalf("unexpected actions: %+v", got.Items)
	}
	if got.Items[1].Error != "no compatible esim" {
		t.Fatalf("expected item error carried over, got %+v", got.Items[1])
	}
}
