package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"esim_bridge/internal/domain/entities"
	mock_interfaces "esim_bridge/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProcessingLock_TryAcquire(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		l := NewProcessingLock(nil, time.Minute)
		_, err := l.TryAcquire(context.Background(), " ")
		if !errors.Is(err, ErrInvalidLockOrderID) {
			t.Fatalf("expected ErrInvalidLockOrderID, got %v", err)
		}
	})

	t.Run("repo not configured", func(t *testing.T) {
		l := NewProcessingLock(nil, time.Minute)
		_, err := l.TryAcquire(context.Background(), "o-1")
		if !errors.Is(err, ErrLockRepoNotConfigured) {
			t.Fatalf("expected ErrLockRepoNotConfigured, got %v", err)
		}
	})

	t.Run("acquires when unlocked and confirms own token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFulfillmentStateRepository(ctrl)
		l := NewProcessingLock(repo, 15*time.Minute)

		var written entities.LockState
		gomock.InOrder(
			repo.EXPECT().ReadLock(gomock.Any(), "o-1").Return(entities.LockState{}, nil),
			repo.EXPECT().WriteLock(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, lock entities.LockState) error {
					written = lock
					return nil
				}),
			repo.EXPECT().ReadLock(gomock.Any(), "o-1").DoAndReturn(
				func(context.Context, string) (entities.LockState, error) {
					return written, nil
				}),
		)

		acq, err := l.TryAcquire(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !acq.Acquired {
			t.Fatalf("expected acquired, got reason=%q", acq.Reason)
		}
		if acq.Token == "" || acq.Token != written.Token {
			t.Fatalf("token mismatch: returned=%q written=%q", acq.Token, written.Token)
		}
		if !written.Held {
			t.Fatalf("expected held=true to be written")
		}
	})

	t.Run("held and fresh fails with locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFulfillmentStateRepository(ctrl)
		l := NewProcessingLock(repo, 15*time.Minute)

		repo.EXPECT().ReadLock(gomock.Any(), "o-1").Return(entities.LockState{
			Held:       true,
			Token:      "other",
			AcquiredAt: time.Now().UTC().Add(-time.Minute),
		}, nil)

		acq, err := l.TryAcquire(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if acq.Acquired || acq.Reason != LockReasonLocked {
			t.Fatalf("expected locked reason, got %+v", acq)
		}
	})

	t.Run("stale lock is taken over", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFulfillmentStateRepository(ctrl)
		l := NewProcessingLock(repo, 15*time.Minute)

		var written entities.LockState
		gomock.InOrder(
			repo.EXPECT().ReadLock(gomock.Any(), "o-1").Return(entities.LockState{
				Held:       true,
				Token:      "crashed-worker",
				AcquiredAt: time.Now().UTC().Add(-16 * time.Minute),
			}, nil),
			repo.EXPECT().WriteLock(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, lock entities.LockState) error {
					written = lock
					return nil
				}),
			repo.EXPECT().ReadLock(gomock.Any(), "o-1").DoAndReturn(
				func(context.Context, string) (entities.LockState, error) {
					return written, nil
				}),
		)

		acq, err := l.TryAcquire(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !acq.Acquired {
			t.Fatalf("expected takeover to acquire, got %+v", acq)
		}
	})

	t.Run("two racing acquirers, exactly one wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFulfillmentStateRepository(ctrl)
		l := NewProcessingLock(repo, 15*time.Minute)

		// Interleaving: both observe "not held", both write, B's write lands
		// last. A's confirm read sees B's token and loses; B's confirm read
		// sees its own token and wins.
		var tokenA, tokenB string
		gomock.InOrder(
			repo.EXPECT().ReadLock(gomock.Any(), "o-1").Return(entities.LockState{}, nil),
			repo.EXPECT().WriteLock(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, lock entities.LockState) error {
					tokenA = lock.Token
					return nil
				}),
			repo.EXPECT().ReadLock(gomock.Any(), "o-1").DoAndReturn(
				func(context.Context, string) (entities.LockState, error) {
					return entities.LockState{Held: true, Token: "token-b", AcquiredAt: time.Now().UTC()}, nil
				}),
			repo.EXPECT().ReadLock(gomock.Any(), "o-1").Return(entities.LockState{}, nil),
			repo.EXPECT().WriteLock(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, lock entities.LockState) error {
					tokenB = lock.Token
					return nil
				}),
			repo.EXPECT().ReadLock(gomock.Any(), "o-1").DoAndReturn(
				func(context.Context, string) (entities.LockState, error) {
					return entities.LockState{Held: true, Token: tokenB, AcquiredAt: time.Now().UTC()}, nil
				}),
		)

		acqA, err := l.TryAcquire(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error for A: %v", err)
		}
		acqB, err := l.TryAcquire(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error for B: %v", err)
		}

		if acqA.Acquired {
			t.Fatalf("expected A to lose the race, got %+v", acqA)
		}
		if acqA.Reason != LockReasonLostRace {
			t.Fatalf("expected lost_race for A, got %q", acqA.Reason)
		}
		if !acqB.Acquired {
			t.Fatalf("expected B to win, got %+v", acqB)
		}
		if tokenA == "" || tokenA == tokenB {
			t.Fatalf("expected distinct tokens, got a=%q b=%q", tokenA, tokenB)
		}
	})

	t.Run("store fault propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFulfillmentStateRepository(ctrl)
		l := NewProcessingLock(repo, 15*time.Minute)

		repo.EXPECT().ReadLock(gomock.Any(), "o-1").Return(entities.LockState{}, errors.New("store down"))

		if _, err := l.TryAcquire(context.Background(), "o-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestProcessingLock_Release(t *testing.T) {
	t.Run("not locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFulfillmentStateRepository(ctrl)
		l := NewProcessingLock(repo, 15*time.Minute)

		repo.EXPECT().ReadLock(gomock.Any(), "o-1").Return(entities.LockState{}, nil)

		rel, err := l.Release(context.Background(), "o-1", "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rel.Released || rel.Reason != ReleaseReasonNotLocked {
			t.Fatalf("expected not_locked, got %+v", rel)
		}
	})

	t.Run("token mismatch refuses release", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFulfillmentStateRepository(ctrl)
		l := NewProcessingLock(repo, 15*time.Minute)

		repo.EXPECT().ReadLock(gomock.Any(), "o-1").Return(entities.LockState{
			Held: true, Token: "new-holder", AcquiredAt: time.Now().UTC(),
		}, nil)

		rel, err := l.Release(context.Background(), "o-1", "old-holder")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rel.Released || rel.Reason != ReleaseReasonTokenMismatch {
			t.Fatalf("expected token_mismatch, got %+v", rel)
		}
	})

	t.Run("matching token releases", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFulfillmentStateRepository(ctrl)
		l := NewProcessingLock(repo, 15*time.Minute)

		gomock.InOrder(
			repo.EXPECT().ReadLock(gomock.Any(), "o-1").Return(entities.LockState{
				Held: true, Token: "tok", AcquiredAt: time.Now().UTC(),
			}, nil),
			repo.EXPECT().WriteLock(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, lock entities.LockState) error {
					if lock.Held {
						t.Fatalf("expected held=false to be written")
					}
					return nil
				}),
		)

		rel, err := l.Release(context.Background(), "o-1", "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rel.Released {
			t.Fatalf("expected released, got %+v", rel)
		}
	})
}
