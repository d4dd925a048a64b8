package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrNotAcquired = errors.New("lock: could not acquire")

const (
	lockPrefix    = "lock:reserva:"
	lockTTL       = 5 * time.Second
	retryInterval = 50 * time.Millisecond
	acquireBudget = 3 * time.Second
)

// RedisLocker implementa el lock por fecha con SET NX + TTL. El TTL evita
// locks huérfanos si el proceso muere con el lock tomado; el token aleatorio
// evita que una instancia libere el lock de otra.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

func (l *RedisLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	fullKey := lockPrefix + key
	token := uuid.NewString()

	deadline := time.Now().Add(acquireBudget)

	for {
		ok, err := l.client.SetNX(ctx, fullKey, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}

		if time.Now().After(deadline) {
			return nil, ErrNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err()
	}

	return release, nil
}

var _ Locker = (*RedisLocker)(nil)
