package service

import (
	"sync"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTwiceRestoresState(t *testing.T) {
	f := newFixture()
	owner := f.user(t, "owner")
	fan := f.user(t, "fan")
	video := f.video(t, owner.ID, "clip", 0)
	comment := &model.Comment{VideoID: video.ID, OwnerID: owner.ID, Content: "hi"}
	require.NoError(t, f.store.CreateComment(f.ctx, comment))
	tweet := &model.Tweet{OwnerID: owner.ID, Content: "hello"}
	require.NoError(t, f.store.CreateTweet(f.ctx, tweet))

	keys := []model.RelationKey{
		{Kind: model.VideoLikeRelation, TargetID: video.ID, ActorID: fan.ID},
		{Kind: model.CommentLikeRelation, TargetID: comment.ID, ActorID: fan.ID},
		{Kind: model.TweetLikeRelation, TargetID: tweet.ID, ActorID: fan.ID},
		{Kind: model.SubscriptionRelation, TargetID: owner.ID, ActorID: fan.ID},
	}
	toggler := NewToggler(f.deps)
	for _, key := range keys {
		first, err := toggler.Toggle(f.ctx, key)
		require.NoError(t, err, key.String())
		assert.Equal(t, Created, first, key.String())

		count, err := f.store.CountRelations(f.ctx, key)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, key.String())

		second, err := toggler.Toggle(f.ctx, key)
		require.NoError(t, err, key.String())
		assert.Equal(t, Removed, second, key.String())

		count, err = f.store.CountRelations(f.ctx, key)
		require.NoError(t, err)
		assert.Zero(t, count, key.String())
	}
}

func TestConcurrentTogglesKeepOneRecord(t *testing.T) {
	f := newFixture()
	owner := f.user(t, "owner")
	video := f.video(t, owner.ID, "clip", 0)
	key := model.RelationKey{Kind: model.VideoLikeRelation, TargetID: video.ID, ActorID: owner.ID}
	toggler := NewToggler(f.deps)

	const n = 51
	results := make(chan ToggleResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := toggler.Toggle(f.ctx, key)
			if assert.NoError(t, err) {
				results <- res
			}
		}()
	}
	wg.Wait()
	close(results)

	created := 0
	for res := range results {
		if res == Created {
			created++
		}
	}
	// Serialized toggles alternate, so an odd number of calls ends present.
	assert.Equal(t, n/2+1, created)
	count, err := f.store.CountRelations(f.ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestToggleMissingTarget(t *testing.T) {
	f := newFixture()
	toggler := NewToggler(f.deps)

	for _, kind := range []model.RelationKind{model.VideoLikeRelation, model.CommentLikeRelation, model.TweetLikeRelation} {
		key := model.RelationKey{Kind: kind, TargetID: 404, ActorID: 1}
		_, err := toggler.Toggle(f.ctx, key)
		assert.True(t, errors.Is(err, errno.NotFoundErr), string(kind))

		count, err := f.store.CountRelations(f.ctx, key)
		require.NoError(t, err)
		assert.Zero(t, count)
	}

	// Channels are not looked up.
	res, err := toggler.Toggle(f.ctx, model.RelationKey{Kind: model.SubscriptionRelation, TargetID: 404, ActorID: 1})
	require.NoError(t, err)
	assert.Equal(t, Created, res)

	_, err = toggler.Toggle(f.ctx, model.RelationKey{Kind: "bookmark", TargetID: 1, ActorID: 1})
	assert.True(t, errors.Is(err, errno.ParamErr))
}
