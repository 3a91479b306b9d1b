package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"esim_bridge/internal/domain/entities"
	"esim_bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const DefaultLockTTL = 15 * time.Minute

// Acquire/release outcome reasons. Lock contention is a normal outcome, not
// an error: it means another delivery is already handling the order.
const (
	LockReasonLocked           = "locked"
	LockReasonLostRace         = "lost_race"
	ReleaseReasonNotLocked     = "not_locked"
	ReleaseReasonTokenMismatch = "token_mismatch"
)

var (
	ErrInvalidLockOrderID    = errors.New("invalid lock order id")
	ErrLockRepoNotConfigured = errors.New("fulfillment state repository not configured")
)

type LockAcquisition struct {
	Acquired bool
	Token    string
	Reason   string
}

type LockRelease struct {
	Released bool
	Reason   string
}

// ProcessingLock is a TTL-bounded, token-owned mutual-exclusion lock per
// order, persisted as metafields on the order record.
//
// The commerce platform offers no compare-and-swap, so acquisition is
// write-then-confirm: write a fresh token, re-read, and only the caller whose
// token survived the re-read holds the lock. Two concurrent callers that both
// observed "not held" will both write; the re-read disambiguates them.
type ProcessingLock struct {
	repo interfaces.IFulfillmentStateRepository
	ttl  time.Duration

	// now is swappable for stale-lock tests.
	now func() time.Time
}

func NewProcessingLock(repo interfaces.IFulfillmentStateRepository, ttl time.Duration) *ProcessingLock {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &ProcessingLock{repo: repo, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

// TryAcquire attempts to take the lock for orderID.
//
// Failure semantics: any store fault propagates as an error and the caller
// must treat the acquisition as non-acquired. An unconfirmed write (the
// re-read shows someone else's token) returns Acquired=false with
// LockReasonLostRace.
func (l *ProcessingLock) TryAcquire(ctx context.Context, orderID string) (LockAcquisition, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return LockAcquisition{}, ErrInvalidLockOrderID
	}
	if l.repo == nil {
		return LockAcquisition{}, ErrLockRepoNotConfigured
	}

	current, err := l.repo.ReadLock(ctx, orderID)
	if err != nil {
		log.Printf("[lock][acquire] read failed order_id=%s err=%v", orderID, err)
		return LockAcquisition{}, err
	}
	now := l.now()
	if current.Held && !current.Stale(l.ttl, now) {
		log.Printf("[lock][acquire] already held order_id=%s acquired_at=%s", orderID, current.AcquiredAt.Format(time.RFC3339))
		return LockAcquisition{Reason: LockReasonLocked}, nil
	}
	if current.Held {
		log.Printf("[lock][acquire] taking over stale lock order_id=%s acquired_at=%s ttl=%s", orderID, current.AcquiredAt.Format(time.RFC3339), l.ttl)
	}

	token := uuid.NewString()
	if err := l.repo.WriteLock(ctx, orderID, entities.LockState{Held: true, Token: token, AcquiredAt: now}); err != nil {
		log.Printf("[lock][acquire] write failed order_id=%s err=%v", orderID, err)
		return LockAcquisition{}, err
	}

	// Confirm the write survived: concurrent acquirers both pass the "not
	// held" check and both write; only the last writer's token is stored.
	confirmed, err := l.repo.ReadLock(ctx, orderID)
	if err != nil {
		log.Printf("[lock][acquire] confirm read failed order_id=%s err=%v", orderID, err)
		return LockAcquisition{}, err
	}
	if confirmed.Token != token {
		log.Printf("[lock][acquire] lost race order_id=%s", orderID)
		return LockAcquisition{Reason: LockReasonLostRace}, nil
	}

	log.Printf("[lock][acquire] acquired order_id=%s", orderID)
	return LockAcquisition{Acquired: true, Token: token}, nil
}

// Release frees the lock if and only if the stored token still matches the
// caller's token, so a slow caller whose lock was taken over after the TTL
// cannot release the new holder's lock.
func (l *ProcessingLock) Release(ctx context.Context, orderID, token string) (LockRelease, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return LockRelease{}, ErrInvalidLockOrderID
	}
	if l.repo == nil {
		return LockRelease{}, ErrLockRepoNotConfigured
	}

	current, err := l.repo.ReadLock(ctx, orderID)
	if err != nil {
		log.Printf("[lock][release] read failed order_id=%s err=%v", orderID, err)
		return LockRelease{}, err
	}
	if !current.Held {
		return LockRelease{Reason: ReleaseReasonNotLocked}, nil
	}
	if current.Token != token {
		log.Printf("[lock][release] token mismatch order_id=%s", orderID)
		return LockRelease{Reason: ReleaseReasonTokenMismatch}, nil
	}

	if err := l.repo.WriteLock(ctx, orderID, entities.LockState{Held: false}); err != nil {
		log.Printf("[lock][release] write failed order_id=%s err=%v", orderID, err)
		return LockRelease{}, err
	}
	log.Printf("[lock][release] released order_id=%s", orderID)
	return LockRelease{Released: true}, nil
}
