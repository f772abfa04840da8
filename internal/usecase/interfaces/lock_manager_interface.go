package interfaces

import "context"

// ILockManager serializes work on a single key (one obligation).
// The returned release func must be called exactly once.
type ILockManager interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
