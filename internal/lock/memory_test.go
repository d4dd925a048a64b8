package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_SerializesSameKey(t *testing.T) {
	locker := NewMemoryLocker()

	const workers = 20
	var (
		wg         sync.WaitGroup
		inside     int32
		violations int32
		counter    int // protegido solo por el lock bajo prueba
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := locker.Acquire(context.Background(), "2026-03-10")
			require.NoError(t, err)
			defer release()

			if atomic.AddInt32(&inside, 1) > 1 {
				atomic.AddInt32(&violations, 1)
			}
			counter++
			atomic.AddInt32(&inside, -1)
		}()
	}

	wg.Wait()

	// nunca dos dentro de la sección crítica de la misma fecha
	assert.Zero(t, violations)
	assert.Equal(t, workers, counter)
}

func TestMemoryLocker_IndependentKeys(t *testing.T) {
	locker := NewMemoryLocker()

	releaseA, err := locker.Acquire(context.Background(), "2026-03-10")
	require.NoError(t, err)

	// otra fecha no espera a la primera
	releaseB, err := locker.Acquire(context.Background(), "2026-03-11")
	require.NoError(t, err)

	releaseB()
	releaseA()
}

func TestMemoryLocker_CancelledContext(t *testing.T) {
	locker := NewMemoryLocker()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := locker.Acquire(ctx, "2026-03-10")
	assert.Error(t, err)
}

func TestMemoryLocker_CleansUpEntries(t *testing.T) {
	locker := NewMemoryLocker()

	release, err := locker.Acquire(context.Background(), "2026-03-10")
	require.NoError(t, err)
	release()

	locker.mu.Lock()
	defer locker.mu.Unlock()
	assert.Empty(t, locker.locks)
}
