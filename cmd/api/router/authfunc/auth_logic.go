package authfunc

import (
	"context"
	"strconv"
	"time"

	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
	"github.com/pkg/errors"
)

var JwtMiddleware *jwt.HertzJWTMiddleware

// Init prepares the access token middleware. Tokens are issued by the
// identity provider with the same secret; this service only validates them.
func Init(secret, tokenLookup string, unauthorized func(ctx context.Context, c *app.RequestContext, err error)) error {
	if secret == "" {
		return errors.New("jwt secret is empty")
	}
	var err error
	JwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         constants.ServiceName,
		Key:           []byte(secret),
		Timeout:       24 * time.Hour,
		MaxRefresh:    24 * time.Hour,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   tokenLookup,
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		// Snowflake ids do not survive a float64 round trip, so the claim is a string.
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if id, ok := data.(int64); ok {
				return jwt.MapClaims{constants.IdentityKey: strconv.FormatInt(id, 10)}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return claims[constants.IdentityKey]
		},
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			return utils.Transfer(data) > 0
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			hlog.CtxInfof(ctx, "reject request %s: %s", c.Request.URI().Path(), message)
			unauthorized(ctx, c, errno.AuthorizationFailedErr.WithMessage(message))
		},
	})
	if err != nil {
		return errors.Wrap(err, "init jwt middleware failed")
	}
	return nil
}

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		JwtMiddleware.MiddlewareFunc(),
	)
}

// GenerateToken signs an access token for userID.
func GenerateToken(userID int64) (string, error) {
	token, _, err := JwtMiddleware.TokenGenerator(userID)
	if err != nil {
		return "", errors.Wrapf(err, "sign token failed, user_id=%d", userID)
	}
	return token, nil
}

// ActorID returns the id of the user the request was authenticated as.
func ActorID(ctx context.Context, c *app.RequestContext) (int64, error) {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return 0, errno.AuthorizationFailedErr
	}
	id := utils.Transfer(v)
	if id <= 0 {
		return 0, errno.AuthorizationFailedErr.WithMessage("Invalid identity in token")
	}
	return id, nil
}
