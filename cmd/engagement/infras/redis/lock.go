package redis

import (
	"context"
	"time"

	"VidTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const lockPrefix = "vidtube:lock:"

// Locker hands out redsync mutexes so every API instance serializes the
// same relation key.
type Locker struct {
	rs     *redsync.Redsync
	expiry time.Duration
	tries  int
}

func NewLocker(client redis.UniversalClient, expiry time.Duration) *Locker {
	if expiry <= 0 {
		expiry = constants.DefaultLockExpiry
	}
	return &Locker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
		tries:  constants.DefaultLockTries,
	}
}

// Lock blocks until key is held or ctx is done. The returned func releases it.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex(lockPrefix+key,
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(l.tries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.Wrapf(err, "acquire lock failed, key=%s", key)
	}
	return func() {
		// The lock may already have expired; the next holder is unaffected.
		if ok, err := mutex.UnlockContext(context.Background()); !ok || err != nil {
			hlog.CtxWarnf(ctx, "release lock %s failed: ok=%v err=%v", key, ok, err)
		}
	}, nil
}
