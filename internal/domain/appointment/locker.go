package appointment

import (
	"context"
	"errors"
)

// ErrLockHeld means another request is currently booking with the same
// idempotency key.
var ErrLockHeld = errors.New("idempotency key is locked")

// Locker serializes bookings that share an idempotency key.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// NoopLocker always succeeds. Used when no lock backend is configured.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}
