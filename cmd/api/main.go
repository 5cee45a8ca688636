package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"VidTube.com/cmd/api/handlers"
	"VidTube.com/cmd/api/router/authfunc"
	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/engagement/dal/db"
	"VidTube.com/cmd/engagement/dal/memory"
	"VidTube.com/cmd/engagement/infras/redis"
	"VidTube.com/cmd/engagement/service"
	"VidTube.com/config"
	"VidTube.com/config/jaeger"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/pkg/errors"
)

func initStore() (dal.Store, error) {
	switch config.ConfigInfo.Storage.Driver {
	case "memory":
		hlog.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil
	case "mysql", "":
		return db.Init()
	default:
		return nil, errors.Errorf("unknown storage driver %q", config.ConfigInfo.Storage.Driver)
	}
}

// initLocker prefers the redis locker so relation toggles are serialized
// across instances, and falls back to an in-process one.
func initLocker(ctx context.Context) service.Locker {
	if config.ConfigInfo.Redis.Addr == "" {
		hlog.Warn("redis not configured, relation locks are local to this process")
		return service.NewLocalLocker()
	}
	client, err := redis.Load(ctx)
	if err != nil {
		hlog.Warnf("redis unavailable, relation locks are local to this process: %v", err)
		return service.NewLocalLocker()
	}
	expiry, err := time.ParseDuration(config.ConfigInfo.Redis.LockExpiry)
	if err != nil {
		expiry = constants.DefaultLockExpiry
	}
	return redis.NewLocker(client, expiry)
}

func Init(ctx context.Context) (*service.Deps, io.Closer, error) {
	config.Init()
	if err := utils.InitSnowflake(config.ConfigInfo.Snowflake.Node); err != nil {
		return nil, nil, errors.Wrap(err, "init snowflake failed")
	}

	var closer io.Closer
	if config.ConfigInfo.Jaeger.Enabled {
		closer = jaeger.Init(constants.ServiceName)
	}

	store, err := initStore()
	if err != nil {
		return nil, closer, err
	}
	blobs, err := oss.InitMinio()
	if err != nil {
		return nil, closer, err
	}
	deps := service.NewDeps(store, initLocker(ctx), blobs, config.ConfigInfo.Playlist.OwnerOnlyMembership)

	if err = authfunc.Init(config.ConfigInfo.Jwt.Secret, config.ConfigInfo.Jwt.TokenLookup, handlers.Unauthorized); err != nil {
		return nil, closer, err
	}
	handlers.Init(deps, config.ConfigInfo.Server.TempDir)
	return deps, closer, nil
}

func main() {
	_, closer, err := Init(context.Background())
	if closer != nil {
		defer closer.Close()
	}
	if err != nil {
		hlog.Fatalf("init failed: %+v", err)
	}

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(config.ConfigInfo.Server.MaxBodySize),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, handlers.ErrorResponse{
				StatusCode: consts.StatusInternalServerError,
				Message:    fmt.Sprintf("[Recovery] err=%v", err),
				Success:    false,
			})
		})))

	register(r)
	r.Spin()
}
