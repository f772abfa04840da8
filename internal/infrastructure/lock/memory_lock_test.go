package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLockManager_SerializesSameKey(t *testing.T) {
	m := NewMemoryLockManager()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := m.Acquire(context.Background(), "obligation:1")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				cur := atomic.LoadInt32(&maxInside)
				if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, m.size())
}

func TestMemoryLockManager_DifferentKeysDoNotBlock(t *testing.T) {
	m := NewMemoryLockManager()

	releaseA, err := m.Acquire(context.Background(), "a")
	require.NoError(t, err)
	defer releaseA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	releaseB, err := m.Acquire(ctx, "b")
	require.NoError(t, err)
	releaseB()
}

func TestMemoryLockManager_ContextCancelled(t *testing.T) {
	m := NewMemoryLockManager()

	release, err := m.Acquire(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = m.Acquire(ctx, "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	// Releasing twice is a no-op.
	release()
	assert.Equal(t, 0, m.size())

	again, err := m.Acquire(context.Background(), "a")
	require.NoError(t, err)
	again()
}
