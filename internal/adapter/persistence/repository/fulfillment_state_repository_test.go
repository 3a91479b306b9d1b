package repository

import (
	"context"
	"testing"
	"time"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"
	mock_interfaces "esim_bridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFulfillmentStateRepository_LockRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIOrderRecordStore(ctrl)
	repo := NewFulfillmentStateRepository(store)

	at := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	store.EXPECT().WriteFields(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fields []interfaces.MetafieldInput) ([]interfaces.UserError, error) {
			got := map[string]string{}
			for _, f := range fields {
				got[f.Key] = f.Value
			}
			if got[fieldLockHeld] != "true" || got[fieldLockToken] != "tok-1" || got[fieldLockAcquiredAt] != "2026-08-24T12:00:00Z" {
				t.Fatalf("unexpected lock fields: %v", got)
			}
			return nil, nil
		})

	if err := repo.WriteLock(context.Background(), "o-1", entities.LockState{Held: true, Token: "tok-1", AcquiredAt: at}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.EXPECT().ReadFields(gomock.Any(), "o-1", gomock.Any()).Return(map[string]string{
		fieldLockHeld:       "true",
		fieldLockToken:      "tok-1",
		fieldLockAcquiredAt: "2026-08-24T12:00:00Z",
	}, nil)

	lock, err := repo.ReadLock(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lock.Held || lock.Token != "tok-1" || !lock.AcquiredAt.Equal(at) {
		t.Fatalf("lock did not round-trip: %+v", lock)
	}
}

func TestFulfillmentStateRepository_ReadLock_UnparsableTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIOrderRecordStore(ctrl)
	repo := NewFulfillmentStateRepository(store)

	store.EXPECT().ReadFields(gomock.Any(), "o-1", gomock.Any()).Return(map[string]string{
		fieldLockHeld:       "true",
		fieldLockToken:      "tok-1",
		fieldLockAcquiredAt: "not-a-date",
	}, nil)

	lock, err := repo.ReadLock(context.Background(), "o-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Zero AcquiredAt reads as maximally stale, so the lock is recoverable.
	if !lock.Held || !lock.AcquiredAt.IsZero() {
		t.Fatalf("expected held lock with zero timestamp, got %+v", lock)
	}
	if !lock.Stale(15*time.Minute, time.Now().UTC()) {
		t.Fatalf("expected lock to read as stale")
	}
}

func TestFulfillmentStateRepository_AppendRecordedAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIOrderRecordStore(ctrl)
	repo := NewFulfillmentStateRepository(store)

	existing := `[{"iccid":"894450","provider_asset_id":"a-1","plan_id":"plan-eu-5gb","variant_id":"v-1"}]`
	store.EXPECT().ReadFields(gomock.Any(), "o-1", []string{fieldEsims}).Return(map[string]string{fieldEsims: existing}, nil)
	store.EXPECT().WriteFields(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fields []interfaces.MetafieldInput) ([]interfaces.UserError, error) {
			if len(fields) != 1 || fields[0].Key != fieldEsims || fields[0].Type != typeJSON {
				t.Fatalf("unexpected write: %+v", fields)
			}
			return nil, nil
		})

	err := repo.AppendRecordedAsset(context.Background(), "o-1", entities.RecordedAsset{
		ICCID: "894451", ProviderAssetID: "a-2", PlanID: "plan-us-1gb", VariantID: "v-2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFulfillmentStateRepository_AppendAlertKey_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIOrderRecordStore(ctrl)
	repo := NewFulfillmentStateRepository(store)

	store.EXPECT().ReadFields(gomock.Any(), "o-1", []string{fieldAlertKeys}).Return(map[string]string{
		fieldAlertKeys: `["70:894450"]`,
	}, nil)
	// Key already present: no write happens.

	if err := repo.AppendAlertKey(context.Background(), "o-1", "70:894450"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFulfillmentStateRepository_WriteRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIOrderRecordStore(ctrl)
	repo := NewFulfillmentStateRepository(store)

	store.EXPECT().WriteFields(gomock.Any(), "o-1", gomock.Any()).Return([]interfaces.UserError{
		{Field: "value", Message: "too long"},
	}, nil)

	if err := repo.MarkProcessed(context.Background(), "o-1", time.Now().UTC()); err == nil {
		t.Fatalf("expected user errors to surface as write failure")
	}
}
