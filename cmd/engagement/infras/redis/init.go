package redis

import (
	"context"
	"time"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var redisDBLock *redis.Client

// Load connects the client backing the relation locks.
func Load(ctx context.Context) (*redis.Client, error) {
	redisDBLock = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := redisDBLock.Ping(pingCtx).Result(); err != nil {
		hlog.Info("redisDBLock", err)
		return nil, errors.Wrapf(err, "ping redis failed, addr=%s", config.ConfigInfo.Redis.Addr)
	}
	return redisDBLock, nil
}
