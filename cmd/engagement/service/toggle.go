package service

import (
	"context"

	"VidTube.com/cmd/engagement/dal"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
)

type ToggleResult string

const (
	Created ToggleResult = "created"
	Removed ToggleResult = "removed"
)

// Toggler flips a relationship between present and absent. Calls on the
// same key are serialized through the Locker and the store keeps the key
// unique, so at most one record exists per key.
type Toggler struct {
	store  dal.Store
	locker Locker
}

func NewToggler(deps *Deps) *Toggler {
	return &Toggler{store: deps.Store, locker: deps.Locker}
}

func (t *Toggler) Toggle(ctx context.Context, key model.RelationKey) (ToggleResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "engagement.Toggle")
	defer span.Finish()
	span.SetTag("relation", key.String())

	if err := t.checkTarget(ctx, key); err != nil {
		return "", err
	}

	unlock, err := t.locker.Lock(ctx, key.String())
	if err != nil {
		return "", errors.WithMessagef(err, "Failed to lock relation %s", key)
	}
	defer unlock()

	removed, err := t.store.DeleteRelation(ctx, key)
	if err != nil {
		return "", errors.WithMessagef(err, "Failed to delete relation %s", key)
	}
	if removed {
		hlog.CtxDebugf(ctx, "relation %s removed", key)
		return Removed, nil
	}
	if err = t.store.CreateRelation(ctx, key); err != nil {
		return "", errors.WithMessagef(err, "Failed to create relation %s", key)
	}
	hlog.CtxDebugf(ctx, "relation %s created", key)
	return Created, nil
}

// checkTarget requires the liked video, comment or tweet to exist. Channels
// of a subscription are not looked up.
func (t *Toggler) checkTarget(ctx context.Context, key model.RelationKey) error {
	var err error
	var name string
	switch key.Kind {
	case model.VideoLikeRelation:
		name = "Video"
		_, err = t.store.GetVideo(ctx, key.TargetID)
	case model.CommentLikeRelation:
		name = "Comment"
		_, err = t.store.GetComment(ctx, key.TargetID)
	case model.TweetLikeRelation:
		name = "Tweet"
		_, err = t.store.GetTweet(ctx, key.TargetID)
	case model.SubscriptionRelation:
		return nil
	default:
		return errno.ParamErr.WithMessagef("Unknown relation kind %q", key.Kind)
	}
	if errors.Is(err, dal.ErrRecordNotFound) {
		return errno.NotFoundErr.WithMessagef("%s with ID=%d not found", name, key.TargetID)
	}
	return err
}
