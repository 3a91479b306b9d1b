package usecase

import (
	"testing"
	"time"

	"esim_bridge/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(t time.Time) *time.Time { return &t }

func TestSelectTopUpTarget(t *testing.T) {
	activated := tp(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
	earlier := tp(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	later := tp(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		esims     []entities.Esim
		target    string
		wantICCID string
		wantPlan  int64 // remaining bytes of the expected winner, -1 for nil
	}{
		{
			name:     "empty input returns nil",
			esims:    nil,
			target:   "plan-eu-5gb",
			wantPlan: -1,
		},
		{
			name: "no plan of the target type returns nil",
			esims: []entities.Esim{
				{ICCID: "111", Plans: []entities.Plan{{PlanTypeID: "plan-us-1gb", RemainingBytes: 10}}},
			},
			target:   "plan-eu-5gb",
			wantPlan: -1,
		},
		{
			name: "lowest remaining wins regardless of activation",
			esims: []entities.Esim{
				{ICCID: "111", Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100, ActivatedAt: activated}}},
				{ICCID: "222", Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 50}}},
			},
			target:    "plan-eu-5gb",
			wantICCID: "222",
			wantPlan:  50,
		},
		{
			name: "equal remaining, activated beats non-activated",
			esims: []entities.Esim{
				{ICCID: "111", Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100}}},
				{ICCID: "222", Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100, ActivatedAt: activated}}},
			},
			target:    "plan-eu-5gb",
			wantICCID: "222",
			wantPlan:  100,
		},
		{
			name: "remaining and activation tie, earliest start wins",
			esims: []entities.Esim{
				{ICCID: "111", Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100, ActivatedAt: activated, StartAt: later}}},
				{ICCID: "222", Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100, ActivatedAt: activated, StartAt: earlier}}},
			},
			target:    "plan-eu-5gb",
			wantICCID: "222",
			wantPlan:  100,
		},
		{
			name: "terminated and cancelled esims are excluded",
			esims: []entities.Esim{
				{ICCID: "111", State: entities.EsimStateTerminated, Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 1}}},
				{ICCID: "222", State: entities.EsimStateCancelled, Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 2}}},
				{ICCID: "333", State: entities.EsimStateActive, Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 900}}},
			},
			target:    "plan-eu-5gb",
			wantICCID: "333",
			wantPlan:  900,
		},
		{
			name: "plan type match is case-insensitive and trimmed",
			esims: []entities.Esim{
				{ICCID: "111", Plans: []entities.Plan{{PlanTypeID: " Plan-EU-5GB ", RemainingBytes: 10}}},
			},
			target:    "plan-eu-5gb",
			wantICCID: "111",
			wantPlan:  10,
		},
		{
			name: "zero-date activation counts as not activated",
			esims: []entities.Esim{
				{ICCID: "111", Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100, ActivatedAt: &time.Time{}}}},
				{ICCID: "222", Plans: []entities.Plan{{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100, ActivatedAt: activated}}},
			},
			target:    "plan-eu-5gb",
			wantICCID: "222",
			wantPlan:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTopUpTarget(tt.esims, tt.target)
			if tt.wantPlan < 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantICCID, got.ICCID)
			assert.Equal(t, tt.wantPlan, got.Plan.RemainingBytes)
		})
	}
}

func TestSelectTopUpTarget_Deterministic(t *testing.T) {
	esims := []entities.Esim{
		{ICCID: "111", Plans: []entities.Plan{
			{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100},
			{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100},
		}},
		{ICCID: "222", Plans: []entities.Plan{
			{PlanTypeID: "plan-eu-5gb", RemainingBytes: 100},
		}},
	}

	first := SelectTopUpTarget(esims, "plan-eu-5gb")
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := SelectTopUpTarget(esims, "plan-eu-5gb")
		require.NotNil(t, again)
		assert.Equal(t, first.ICCID, again.ICCID)
		assert.Equal(t, first.Plan, again.Plan)
	}
}
